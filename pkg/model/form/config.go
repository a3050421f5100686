package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uw-it-aca/rttl-info-lti/pkg/consts"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
)

// Choice lists offered on the request form. Resource values are plain
// integers, units implied (cores / GB).
var (
	CPUChoices     = []string{"1", "2", "4"}
	MemoryChoices  = []string{"2", "4"}
	StorageChoices = []string{"5", "10"}
)

// CourseConfigurationForm binds the hub request form. Every field is
// optional on the wire; Validate applies defaults and consistency rules.
type CourseConfigurationForm struct {
	CPURequest            string `form:"cpu_request" json:"cpu_request"`
	MemoryRequest         string `form:"memory_request" json:"memory_request"`
	StorageRequest        string `form:"storage_request" json:"storage_request"`
	ContainerImage        string `form:"container_image" json:"container_image"`
	CustomImageURL        string `form:"custom_image_url" json:"custom_image_url"`
	CustomImageTag        string `form:"custom_image_tag" json:"custom_image_tag"`
	FeatureNFS            bool   `form:"feature_nfs" json:"feature_nfs"`
	FeatureBinderhub      bool   `form:"feature_binderhub" json:"feature_binderhub"`
	GitpullerURI          string `form:"gitpuller_uri" json:"gitpuller_uri"`
	GitpullerTag          string `form:"gitpuller_tag" json:"gitpuller_tag"`
	GitpullerSyncDir      string `form:"gitpuller_sync_dir" json:"gitpuller_sync_dir"`
	AdditionalAdmins      string `form:"additional_admins" json:"additional_admins"`
	ConfigurationComments string `form:"configuration_comments" json:"configuration_comments"`
}

// Validate applies defaults, checks choice fields and requires image
// URL/tag when a custom image is selected.
func (f *CourseConfigurationForm) Validate() error {
	if f.CPURequest == "" {
		f.CPURequest = "1"
	}
	if f.MemoryRequest == "" {
		f.MemoryRequest = "2"
	}
	if f.StorageRequest == "" {
		f.StorageRequest = "5"
	}
	if f.ContainerImage == "" {
		f.ContainerImage = consts.DefaultCatalogImage
	}

	if err := checkChoice("cpu_request", f.CPURequest, CPUChoices); err != nil {
		return err
	}
	if err := checkChoice("memory_request", f.MemoryRequest, MemoryChoices); err != nil {
		return err
	}
	if err := checkChoice("storage_request", f.StorageRequest, StorageChoices); err != nil {
		return err
	}

	if f.ContainerImage == "custom" {
		if f.CustomImageURL == "" {
			return &rttl.ValidationError{
				Field:   "custom_image_url",
				Message: "image URL is required when using a custom image",
			}
		}
		if f.CustomImageTag == "" {
			f.CustomImageTag = "latest"
		}
	} else if _, ok := consts.ImageCatalog[f.ContainerImage]; !ok {
		return &rttl.ValidationError{
			Field:   "container_image",
			Message: fmt.Sprintf("unknown image {%s}", f.ContainerImage),
		}
	}

	if f.GitpullerURI != "" {
		if f.GitpullerTag == "" {
			f.GitpullerTag = consts.DefaultGitpullerTag
		}
		if f.GitpullerSyncDir == "" {
			f.GitpullerSyncDir = consts.DefaultGitpullerSyncDir
		}
	}

	return nil
}

// FeaturesList converts the feature checkboxes to the features list.
func (f *CourseConfigurationForm) FeaturesList() []string {
	features := []string{}
	if f.FeatureNFS {
		features = append(features, consts.FeatureNFS)
	}
	if f.FeatureBinderhub {
		features = append(features, consts.FeatureBinderhub)
	}
	return features
}

// HubAdminsList converts the comma-separated additional_admins field to a
// list of netids, stripping any mail domain the user typed.
func (f *CourseConfigurationForm) HubAdminsList() []string {
	if f.AdditionalAdmins == "" {
		return nil
	}
	admins := []string{}
	for _, admin := range strings.Split(f.AdditionalAdmins, ",") {
		if admin = strings.TrimSpace(admin); admin != "" {
			admins = append(admins, strings.SplitN(admin, "@", 2)[0])
		}
	}
	if len(admins) == 0 {
		return nil
	}
	return admins
}

// ToConfiguration converts the validated form to a configuration record.
func (f *CourseConfigurationForm) ToConfiguration() (*rttl.CourseConfiguration, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	cpu, _ := strconv.Atoi(f.CPURequest)
	memory, _ := strconv.Atoi(f.MemoryRequest)
	storage, _ := strconv.Atoi(f.StorageRequest)

	imageURI := f.CustomImageURL
	imageTag := f.CustomImageTag
	if f.ContainerImage != "custom" {
		image := consts.ImageCatalog[f.ContainerImage]
		imageURI = image.URI
		imageTag = image.Tag
	}

	targets := []rttl.GitpullerTarget{}
	if f.GitpullerURI != "" {
		targets = append(targets, rttl.GitpullerTarget{
			GitpullerURI:     f.GitpullerURI,
			GitpullerTag:     f.GitpullerTag,
			GitpullerSyncDir: f.GitpullerSyncDir,
		})
	}

	config := &rttl.CourseConfiguration{
		ConfigurationApplied:  false,
		CPURequest:            &cpu,
		MemoryRequest:         &memory,
		StorageRequest:        &storage,
		ImageURI:              imageURI,
		ImageTag:              imageTag,
		GitpullerTargets:      targets,
		ConfigurationComments: f.ConfigurationComments,
	}
	config.SetFeaturesList(f.FeaturesList())
	return config, nil
}

// FromConfiguration populates a form from an existing configuration, used to
// pre-fill the update view.
func FromConfiguration(config *rttl.CourseConfiguration) *CourseConfigurationForm {
	f := &CourseConfigurationForm{
		ContainerImage:        consts.CatalogNameForImage(config.ImageURI),
		ConfigurationComments: config.ConfigurationComments,
	}

	if config.CPURequest != nil {
		f.CPURequest = strconv.Itoa(*config.CPURequest)
	}
	if config.MemoryRequest != nil {
		f.MemoryRequest = strconv.Itoa(*config.MemoryRequest)
	}
	if config.StorageRequest != nil {
		f.StorageRequest = strconv.Itoa(*config.StorageRequest)
	}

	if f.ContainerImage == "custom" {
		f.CustomImageURL = config.ImageURI
		f.CustomImageTag = config.ImageTag
	}

	for _, feature := range config.FeaturesList() {
		switch strings.ToLower(feature) {
		case consts.FeatureNFS:
			f.FeatureNFS = true
		case consts.FeatureBinderhub:
			f.FeatureBinderhub = true
		}
	}

	if len(config.GitpullerTargets) > 0 {
		target := config.GitpullerTargets[0]
		f.GitpullerURI = target.GitpullerURI
		f.GitpullerTag = target.GitpullerTag
		f.GitpullerSyncDir = target.GitpullerSyncDir
	}

	return f
}

func checkChoice(field, value string, choices []string) error {
	for _, choice := range choices {
		if value == choice {
			return nil
		}
	}
	return &rttl.ValidationError{
		Field:   field,
		Message: fmt.Sprintf("{%s} is not one of %s", value, strings.Join(choices, "/")),
	}
}
