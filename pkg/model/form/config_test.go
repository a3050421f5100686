package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
)

func TestValidateDefaults(t *testing.T) {
	f := &CourseConfigurationForm{}
	require.NoError(t, f.Validate())

	assert.Equal(t, "1", f.CPURequest)
	assert.Equal(t, "2", f.MemoryRequest)
	assert.Equal(t, "5", f.StorageRequest)
	assert.Equal(t, "scipy", f.ContainerImage)
}

func TestValidateChoices(t *testing.T) {
	f := &CourseConfigurationForm{CPURequest: "16"}
	err := f.Validate()
	require.Error(t, err)

	vErr, ok := err.(*rttl.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "cpu_request", vErr.Field)
}

func TestValidateCustomImage(t *testing.T) {
	f := &CourseConfigurationForm{ContainerImage: "custom"}
	err := f.Validate()
	require.Error(t, err)
	vErr, ok := err.(*rttl.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "custom_image_url", vErr.Field)

	// URL present, tag defaults to latest
	f = &CourseConfigurationForm{
		ContainerImage: "custom",
		CustomImageURL: "jupyter/minimal-notebook",
	}
	require.NoError(t, f.Validate())
	assert.Equal(t, "latest", f.CustomImageTag)
}

func TestValidateUnknownImage(t *testing.T) {
	f := &CourseConfigurationForm{ContainerImage: "matlab"}
	err := f.Validate()
	require.Error(t, err)
	vErr, ok := err.(*rttl.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "container_image", vErr.Field)
}

func TestValidateGitpullerDefaults(t *testing.T) {
	f := &CourseConfigurationForm{
		GitpullerURI: "https://github.com/example/materials",
	}
	require.NoError(t, f.Validate())

	assert.Equal(t, "main", f.GitpullerTag)
	assert.Equal(t, "COURSE_MATERIALS", f.GitpullerSyncDir)
}

func TestHubAdminsList(t *testing.T) {
	f := &CourseConfigurationForm{
		AdditionalAdmins: "javerage@uw.edu, bill , ,sea@uw.edu",
	}

	// mail domains stripped, blanks dropped
	assert.Equal(t, []string{"javerage", "bill", "sea"}, f.HubAdminsList())

	empty := &CourseConfigurationForm{AdditionalAdmins: " , "}
	assert.Nil(t, empty.HubAdminsList())
}

func TestToConfiguration(t *testing.T) {
	f := &CourseConfigurationForm{
		CPURequest:       "2",
		MemoryRequest:    "4",
		StorageRequest:   "10",
		ContainerImage:   "tensorflow",
		FeatureNFS:       true,
		GitpullerURI:     "https://github.com/example/materials",
		GitpullerTag:     "v2",
		GitpullerSyncDir: "materials",
	}

	config, err := f.ToConfiguration()
	require.NoError(t, err)

	assert.Equal(t, 2, *config.CPURequest)
	assert.Equal(t, 4, *config.MemoryRequest)
	assert.Equal(t, 10, *config.StorageRequest)
	assert.Contains(t, config.ImageURI, "tensorflow-notebook")
	assert.Equal(t, []string{"nfs"}, config.FeaturesList())
	assert.False(t, config.ConfigurationApplied)

	require.Len(t, config.GitpullerTargets, 1)
	assert.Equal(t, "v2", config.GitpullerTargets[0].GitpullerTag)
}

func TestToConfigurationCustomImage(t *testing.T) {
	f := &CourseConfigurationForm{
		ContainerImage: "custom",
		CustomImageURL: "gcr.io/example/notebook",
		CustomImageTag: "2024.1",
	}

	config, err := f.ToConfiguration()
	require.NoError(t, err)
	assert.Equal(t, "gcr.io/example/notebook", config.ImageURI)
	assert.Equal(t, "2024.1", config.ImageTag)
}

func TestFromConfigurationRoundTrip(t *testing.T) {
	f := &CourseConfigurationForm{
		CPURequest:     "4",
		ContainerImage: "r",
		FeatureNFS:     true,
	}
	config, err := f.ToConfiguration()
	require.NoError(t, err)

	rebuilt := FromConfiguration(config)
	assert.Equal(t, "4", rebuilt.CPURequest)
	assert.Equal(t, "r", rebuilt.ContainerImage)
	assert.True(t, rebuilt.FeatureNFS)
	assert.False(t, rebuilt.FeatureBinderhub)
}

func TestFromConfigurationCustomImage(t *testing.T) {
	config := &rttl.CourseConfiguration{
		ImageURI: "gcr.io/example/notebook",
		ImageTag: "2024.1",
	}

	f := FromConfiguration(config)
	assert.Equal(t, "custom", f.ContainerImage)
	assert.Equal(t, "gcr.io/example/notebook", f.CustomImageURL)
	assert.Equal(t, "2024.1", f.CustomImageTag)
}
