package rttl

import "time"

// Canonical hub status values. An older variant of the API used
// requested/provisioning/ready/error/deleted; those values are still accepted
// on read and display as-is, but are never written by this application.
const (
	StatusRequested = "requested"
	StatusBlocked   = "blocked"
	StatusPending   = "pending"
	StatusDeployed  = "deployed"
	StatusArchived  = "archived"
)

// StatusNames maps canonical status values to display names.
var StatusNames = map[string]string{
	StatusRequested: "Requested",
	StatusBlocked:   "Blocked",
	StatusPending:   "Pending",
	StatusDeployed:  "Deployed",
	StatusArchived:  "Archived",
}

// CourseStatus is one entry in a course's hub provisioning history.
type CourseStatus struct {
	ID            int                  `json:"id"`
	Status        string               `json:"status"`
	HubDeployed   bool                 `json:"hub_deployed"`
	Message       string               `json:"message"`
	Configuration *CourseConfiguration `json:"configuration"`
	StatusAdded   *time.Time           `json:"status_added"`
	StatusAddedBy string               `json:"status_added_by"`
	Course        int                  `json:"course"`
}

// StatusDisplayName returns the display name for the status, falling back to
// the raw value for legacy statuses.
func (s *CourseStatus) StatusDisplayName() string {
	if name, ok := StatusNames[s.Status]; ok {
		return name
	}
	return s.Status
}

func CourseStatusFromAPIData(data map[string]interface{}) (*CourseStatus, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	status, err := requireString(data, "status")
	if err != nil {
		return nil, err
	}

	var configuration *CourseConfiguration
	if configData := optMap(data, "configuration"); configData != nil {
		configuration, err = CourseConfigurationFromAPIData(configData)
		if err != nil {
			return nil, err
		}
	}

	statusAdded, err := ParseAPIDatetime(data["status_added"])
	if err != nil {
		return nil, err
	}

	addedBy := optString(data, "status_added_by", "")
	if err := validateEmail("status_added_by", addedBy); err != nil {
		return nil, err
	}

	return &CourseStatus{
		ID:            id,
		Status:        status,
		HubDeployed:   optBool(data, "hub_deployed", false),
		Message:       optString(data, "message", ""),
		Configuration: configuration,
		StatusAdded:   statusAdded,
		StatusAddedBy: addedBy,
		Course:        optInt(data, "course", 0),
	}, nil
}

// CourseStatusDetail is the standalone detail view of a status record.
type CourseStatusDetail struct {
	ID            int                  `json:"id"`
	Course        int                  `json:"course"`
	Status        string               `json:"status"`
	HubDeployed   bool                 `json:"hub_deployed"`
	Message       string               `json:"message"`
	Configuration *CourseConfiguration `json:"configuration"`
	StatusAdded   *time.Time           `json:"status_added"`
	StatusAddedBy string               `json:"status_added_by"`
}

func CourseStatusDetailFromAPIData(data map[string]interface{}) (*CourseStatusDetail, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	course, err := requireInt(data, "course")
	if err != nil {
		return nil, err
	}
	status, err := requireString(data, "status")
	if err != nil {
		return nil, err
	}

	var configuration *CourseConfiguration
	if configData := optMap(data, "configuration"); configData != nil {
		configuration, err = CourseConfigurationFromAPIData(configData)
		if err != nil {
			return nil, err
		}
	}

	statusAdded, err := ParseAPIDatetime(data["status_added"])
	if err != nil {
		return nil, err
	}

	addedBy := optString(data, "status_added_by", "")
	if err := validateEmail("status_added_by", addedBy); err != nil {
		return nil, err
	}

	return &CourseStatusDetail{
		ID:            id,
		Course:        course,
		Status:        status,
		HubDeployed:   optBool(data, "hub_deployed", false),
		Message:       optString(data, "message", ""),
		Configuration: configuration,
		StatusAdded:   statusAdded,
		StatusAddedBy: addedBy,
	}, nil
}
