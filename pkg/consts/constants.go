package consts

import "time"

const DefaultRttlVersion = "v1"

// No explicit timeout existed in the original design; 30 seconds bounds a
// slow remote call without tripping on normal provisioning-API latency.
const DefaultRequestTimeout = 30 * time.Second

// Client response cache. Short enough to reflect near-real-time provisioning
// changes, long enough to absorb view-refresh bursts.
const DefaultClientCacheTimeout = 30 * time.Second

// Repository cache, keyed by hashed SIS course id.
const RepositoryCacheTimeout = 30 * time.Second

const ClientCachePrefix = "rttlapi"

const (
	RepositoryKeyCourseStatus  = "course_status"
	RepositoryKeyCourseDetails = "course_details"
	RepositoryKeyCourseConfigs = "course_configs"
)

// Launch sessions carry LTI launch data between the launch POST and the
// manage/request views.
const SessionKeyPrefix = "ltisession"
const SessionCookieName = "rttlinfo_session"
const SessionTimeout = 8 * time.Hour

const CurrentTermCacheKey = "current_term_sws"

// Hub request form feature names accepted by the request form.
const (
	FeatureNFS       = "nfs"
	FeatureBinderhub = "binderhub"
)

const DefaultGitpullerTag = "main"
const DefaultGitpullerSyncDir = "COURSE_MATERIALS"
