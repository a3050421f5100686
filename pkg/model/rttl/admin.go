package rttl

import "time"

// AdminImage is a Docker image available for JupyterHub deployments.
type AdminImage struct {
	ID          int    `json:"id"`
	Repo        string `json:"repo"`
	Tag         string `json:"tag"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func AdminImageFromAPIData(data map[string]interface{}) (*AdminImage, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	repo, err := requireString(data, "repo")
	if err != nil {
		return nil, err
	}
	tag, err := requireString(data, "tag")
	if err != nil {
		return nil, err
	}
	name, err := requireString(data, "name")
	if err != nil {
		return nil, err
	}

	return &AdminImage{
		ID:          id,
		Repo:        repo,
		Tag:         tag,
		Name:        name,
		Description: optString(data, "description", ""),
	}, nil
}

// AdminCourseExtraEnv is one extra environment variable applied to a hub.
type AdminCourseExtraEnv struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

func AdminCourseExtraEnvFromAPIData(data map[string]interface{}) (*AdminCourseExtraEnv, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	key, err := requireString(data, "key")
	if err != nil {
		return nil, err
	}
	value, err := requireString(data, "value")
	if err != nil {
		return nil, err
	}

	return &AdminCourseExtraEnv{ID: id, Key: key, Value: value}, nil
}

// AdminCourseGitPullerTarget is the administrative form of a git-sync rule.
type AdminCourseGitPullerTarget struct {
	ID        int    `json:"id"`
	Key       string `json:"key"`
	Repo      string `json:"repo"`
	Branch    string `json:"branch"`
	TargetDir string `json:"target_dir"`
}

func AdminCourseGitPullerTargetFromAPIData(data map[string]interface{}) (*AdminCourseGitPullerTarget, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	key, err := requireString(data, "key")
	if err != nil {
		return nil, err
	}
	repo, err := requireString(data, "repo")
	if err != nil {
		return nil, err
	}
	branch, err := requireString(data, "branch")
	if err != nil {
		return nil, err
	}
	targetDir, err := requireString(data, "target_dir")
	if err != nil {
		return nil, err
	}

	return &AdminCourseGitPullerTarget{
		ID:        id,
		Key:       key,
		Repo:      repo,
		Branch:    branch,
		TargetDir: targetDir,
	}, nil
}

// AdminCourseSettings carries the Kubernetes-facing hub settings for an admin
// course. Resource fields use Kubernetes quantity strings, e.g. "512Mi".
// One settings record belongs to exactly one course; extra envs and git
// puller targets are many-to-one against the settings record.
type AdminCourseSettings struct {
	ID                 int                          `json:"id"`
	Course             int                          `json:"course"`
	Image              *AdminImage                  `json:"image"`
	StorageCapacity    string                       `json:"storage_capacity"`
	CPURequest         string                       `json:"cpu_request"`
	CPULimit           string                       `json:"cpu_limit"`
	MemoryRequest      string                       `json:"memory_request"`
	MemoryLimit        string                       `json:"memory_limit"`
	LabUI              bool                         `json:"lab_ui"`
	PlaceholderCount   int                          `json:"placeholder_count"`
	CullTime           int                          `json:"cull_time"`
	Spawner            string                       `json:"spawner"`
	ImagePullerEnabled bool                         `json:"image_puller_enabled"`
	ImageTag           string                       `json:"image_tag"`
	FeatureNFS         bool                         `json:"feature_nfs"`
	FeatureBinderhub   bool                         `json:"feature_binderhub"`
	FeatureNoCanvas    bool                         `json:"feature_nocanvas"`
	FeatureOIDCAuth    bool                         `json:"feature_oidcauth"`
	ExtraEnvs          []AdminCourseExtraEnv        `json:"extra_envs"`
	GitPullerTargets   []AdminCourseGitPullerTarget `json:"git_puller_targets"`
}

func AdminCourseSettingsFromAPIData(data map[string]interface{}) (*AdminCourseSettings, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	course, err := requireInt(data, "course")
	if err != nil {
		return nil, err
	}

	var image *AdminImage
	if imageData := optMap(data, "image"); imageData != nil {
		image, err = AdminImageFromAPIData(imageData)
		if err != nil {
			return nil, err
		}
	}

	extraEnvs := []AdminCourseExtraEnv{}
	for _, envData := range optMapSlice(data, "extra_envs") {
		env, err := AdminCourseExtraEnvFromAPIData(envData)
		if err != nil {
			return nil, err
		}
		extraEnvs = append(extraEnvs, *env)
	}

	targets := []AdminCourseGitPullerTarget{}
	for _, targetData := range optMapSlice(data, "git_puller_targets") {
		target, err := AdminCourseGitPullerTargetFromAPIData(targetData)
		if err != nil {
			return nil, err
		}
		targets = append(targets, *target)
	}

	return &AdminCourseSettings{
		ID:                 id,
		Course:             course,
		Image:              image,
		StorageCapacity:    optString(data, "storage_capacity", "1Gi"),
		CPURequest:         optString(data, "cpu_request", "0.5"),
		CPULimit:           optString(data, "cpu_limit", "1"),
		MemoryRequest:      optString(data, "memory_request", "512Mi"),
		MemoryLimit:        optString(data, "memory_limit", "1Gi"),
		LabUI:              optBool(data, "lab_ui", true),
		PlaceholderCount:   optInt(data, "placeholder_count", 0),
		CullTime:           optInt(data, "cull_time", 3600),
		Spawner:            optString(data, "spawner", "kubespawner"),
		ImagePullerEnabled: optBool(data, "image_puller_enabled", true),
		ImageTag:           optString(data, "image_tag", ""),
		FeatureNFS:         optBool(data, "feature_nfs", false),
		FeatureBinderhub:   optBool(data, "feature_binderhub", false),
		FeatureNoCanvas:    optBool(data, "feature_nocanvas", false),
		FeatureOIDCAuth:    optBool(data, "feature_oidcauth", false),
		ExtraEnvs:          extraEnvs,
		GitPullerTargets:   targets,
	}, nil
}

// AdminCourseList is the list view of an admin course.
type AdminCourseList struct {
	ID          int        `json:"id"`
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	SisCourseID string     `json:"sis_course_id"`
	HubStatus   string     `json:"hub_status"`
	HubURL      string     `json:"hub_url"`
	LastChanged *time.Time `json:"last_changed"`
}

func AdminCourseListFromAPIData(data map[string]interface{}) (*AdminCourseList, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	key, err := requireString(data, "key")
	if err != nil {
		return nil, err
	}
	name, err := requireString(data, "name")
	if err != nil {
		return nil, err
	}
	sisCourseID, err := requireString(data, "sis_course_id")
	if err != nil {
		return nil, err
	}
	hubStatus, err := requireString(data, "hub_status")
	if err != nil {
		return nil, err
	}
	hubURL, err := requireString(data, "hub_url")
	if err != nil {
		return nil, err
	}

	lastChangedRaw, ok := data["last_changed"]
	if !ok {
		return nil, &MissingFieldError{Field: "last_changed"}
	}
	lastChanged, err := ParseAPIDatetime(lastChangedRaw)
	if err != nil {
		return nil, err
	}

	return &AdminCourseList{
		ID:          id,
		Key:         key,
		Name:        name,
		SisCourseID: sisCourseID,
		HubStatus:   hubStatus,
		HubURL:      hubURL,
		LastChanged: lastChanged,
	}, nil
}

// AdminCourseDetail is the detail view of an admin course, one-to-one with
// its settings record.
type AdminCourseDetail struct {
	ID               int                  `json:"id"`
	Key              string               `json:"key"`
	Name             string               `json:"name"`
	Settings         *AdminCourseSettings `json:"settings"`
	Code             string               `json:"code"`
	SisCourseID      string               `json:"sis_course_id"`
	ContactName      string               `json:"contact_name"`
	ContactEmail     string               `json:"contact_email"`
	HubURL           string               `json:"hub_url"`
	HubStatus        string               `json:"hub_status"`
	HubToken         string               `json:"hub_token"`
	LastChanged      *time.Time           `json:"last_changed"`
	WelcomeEmailSent bool                 `json:"welcome_email_sent"`
}

func AdminCourseDetailFromAPIData(data map[string]interface{}) (*AdminCourseDetail, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	key, err := requireString(data, "key")
	if err != nil {
		return nil, err
	}
	name, err := requireString(data, "name")
	if err != nil {
		return nil, err
	}

	settingsData := optMap(data, "settings")
	if settingsData == nil {
		return nil, &MissingFieldError{Field: "settings"}
	}
	settings, err := AdminCourseSettingsFromAPIData(settingsData)
	if err != nil {
		return nil, err
	}

	code, err := requireString(data, "code")
	if err != nil {
		return nil, err
	}
	sisCourseID, err := requireString(data, "sis_course_id")
	if err != nil {
		return nil, err
	}
	contactName, err := requireString(data, "contact_name")
	if err != nil {
		return nil, err
	}
	contactEmail, err := requireString(data, "contact_email")
	if err != nil {
		return nil, err
	}
	if err := validateEmail("contact_email", contactEmail); err != nil {
		return nil, err
	}
	hubURL, err := requireString(data, "hub_url")
	if err != nil {
		return nil, err
	}
	hubStatus, err := requireString(data, "hub_status")
	if err != nil {
		return nil, err
	}
	hubToken, err := requireString(data, "hub_token")
	if err != nil {
		return nil, err
	}

	lastChangedRaw, ok := data["last_changed"]
	if !ok {
		return nil, &MissingFieldError{Field: "last_changed"}
	}
	lastChanged, err := ParseAPIDatetime(lastChangedRaw)
	if err != nil {
		return nil, err
	}

	welcomeEmailSentRaw, ok := data["welcome_email_sent"]
	if !ok {
		return nil, &MissingFieldError{Field: "welcome_email_sent"}
	}
	welcomeEmailSent, _ := welcomeEmailSentRaw.(bool)

	return &AdminCourseDetail{
		ID:               id,
		Key:              key,
		Name:             name,
		Settings:         settings,
		Code:             code,
		SisCourseID:      sisCourseID,
		ContactName:      contactName,
		ContactEmail:     contactEmail,
		HubURL:           hubURL,
		HubStatus:        hubStatus,
		HubToken:         hubToken,
		LastChanged:      lastChanged,
		WelcomeEmailSent: welcomeEmailSent,
	}, nil
}
