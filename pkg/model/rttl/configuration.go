package rttl

import (
	"strings"
	"time"
)

// GitpullerTarget describes one git-sync rule inside a configuration. The
// three fields are always submitted and stored together as a unit.
type GitpullerTarget struct {
	GitpullerURI     string `json:"gitpuller_uri"`
	GitpullerTag     string `json:"gitpuller_tag"`
	GitpullerSyncDir string `json:"gitpuller_sync_dir"`
}

func GitpullerTargetFromAPIData(data map[string]interface{}) (*GitpullerTarget, error) {
	uri, err := requireString(data, "gitpuller_uri")
	if err != nil {
		return nil, err
	}
	tag, err := requireString(data, "gitpuller_tag")
	if err != nil {
		return nil, err
	}
	syncDir, err := requireString(data, "gitpuller_sync_dir")
	if err != nil {
		return nil, err
	}

	return &GitpullerTarget{
		GitpullerURI:     uri,
		GitpullerTag:     tag,
		GitpullerSyncDir: syncDir,
	}, nil
}

func (t *GitpullerTarget) ToAPIData() map[string]interface{} {
	return map[string]interface{}{
		"gitpuller_uri":      t.GitpullerURI,
		"gitpuller_tag":      t.GitpullerTag,
		"gitpuller_sync_dir": t.GitpullerSyncDir,
	}
}

// CourseConfiguration is a JupyterHub configuration requested for a course.
// Resource request fields are integers whose units are implied by the form
// that produced them (cores / GB).
type CourseConfiguration struct {
	ConfigurationApplied  bool              `json:"configuration_applied"`
	CPURequest            *int              `json:"cpu_request"`
	MemoryRequest         *int              `json:"memory_request"`
	StorageRequest        *int              `json:"storage_request"`
	ImageURI              string            `json:"image_uri"`
	ImageTag              string            `json:"image_tag"`
	FeaturesRequest       string            `json:"features_request"`
	GitpullerTargets      []GitpullerTarget `json:"gitpuller_targets"`
	ConfigurationComments string            `json:"configuration_comments"`
	CreateTimestamp       *time.Time        `json:"create_timestamp"`
}

// FeaturesList splits the comma-joined features_request string into a list.
func (c *CourseConfiguration) FeaturesList() []string {
	if c.FeaturesRequest == "" {
		return []string{}
	}
	features := []string{}
	for _, f := range strings.Split(c.FeaturesRequest, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}

// SetFeaturesList stores a feature list in the canonical comma-joined form.
func (c *CourseConfiguration) SetFeaturesList(features []string) {
	c.FeaturesRequest = strings.Join(features, ", ")
}

func CourseConfigurationFromAPIData(data map[string]interface{}) (*CourseConfiguration, error) {
	targets := []GitpullerTarget{}
	for _, targetData := range optMapSlice(data, "gitpuller_targets") {
		target, err := GitpullerTargetFromAPIData(targetData)
		if err != nil {
			return nil, err
		}
		targets = append(targets, *target)
	}

	createTimestamp, err := ParseAPIDatetime(data["create_timestamp"])
	if err != nil {
		return nil, err
	}

	return &CourseConfiguration{
		ConfigurationApplied:  optBool(data, "configuration_applied", false),
		CPURequest:            optIntPtr(data, "cpu_request"),
		MemoryRequest:         optIntPtr(data, "memory_request"),
		StorageRequest:        optIntPtr(data, "storage_request"),
		ImageURI:              optString(data, "image_uri", ""),
		ImageTag:              optString(data, "image_tag", ""),
		FeaturesRequest:       optString(data, "features_request", ""),
		GitpullerTargets:      targets,
		ConfigurationComments: optString(data, "configuration_comments", ""),
		CreateTimestamp:       createTimestamp,
	}, nil
}

// ToAPIData converts the configuration for submission. create_timestamp is a
// server-side computed field and is never sent back.
func (c *CourseConfiguration) ToAPIData() map[string]interface{} {
	targets := []map[string]interface{}{}
	for i := range c.GitpullerTargets {
		targets = append(targets, c.GitpullerTargets[i].ToAPIData())
	}

	return map[string]interface{}{
		"configuration_applied":  c.ConfigurationApplied,
		"cpu_request":            intPtrValue(c.CPURequest),
		"memory_request":         intPtrValue(c.MemoryRequest),
		"storage_request":        intPtrValue(c.StorageRequest),
		"image_uri":              c.ImageURI,
		"image_tag":              c.ImageTag,
		"features_request":       c.FeaturesRequest,
		"gitpuller_targets":      targets,
		"configuration_comments": c.ConfigurationComments,
	}
}

func intPtrValue(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
