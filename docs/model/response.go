package docs

type GenericOKResponse struct {
	Error   bool   `json:"error" example:"false" format:"bool"`
	Message string `json:"message" example:"hub request submitted"`
}

type GenericErrorResponse struct {
	Error   bool   `json:"error" example:"true" format:"bool"`
	Message string `json:"message" example:"course not found"`
}

type HubStatus struct {
	Exists        bool   `json:"exists" example:"true" format:"bool"`
	SisCourseID   string `json:"sis_course_id" example:"2025-spring-BANA-310-B"`
	Status        string `json:"status" example:"deployed"`
	StatusName    string `json:"status_name" example:"Deployed"`
	HubDeployed   bool   `json:"hub_deployed" example:"true" format:"bool"`
	HubURL        string `json:"hub_url" example:"https://jupyter.rttl.uw.edu/2025-spring-BANA-310-B"`
	LastChanged   string `json:"last_changed" example:"2025-03-14T10:21:00Z"`
	StatusMessage string `json:"status_message" example:"hub deployed"`
}

type LaunchResponse struct {
	Error       bool      `json:"error" example:"false" format:"bool"`
	SessionID   string    `json:"session_id" example:"49a31009-7d1b-4ff2-badd-e8c717e2256c"`
	SisCourseID string    `json:"sis_course_id" example:"2025-spring-BANA-310-B"`
	CourseTitle string    `json:"course_title" example:"BANA 310 B: Business Analytics"`
	Status      HubStatus `json:"status"`
}

type HubDataResponse struct {
	Error  bool      `json:"error" example:"false" format:"bool"`
	Status HubStatus `json:"status"`
}

type CourseStatus struct {
	ID            int                 `json:"id" example:"12"`
	Status        string              `json:"status" example:"deployed"`
	HubDeployed   bool                `json:"hub_deployed" example:"true" format:"bool"`
	Message       string              `json:"message" example:"hub deployed"`
	Configuration CourseConfiguration `json:"configuration"`
	StatusAdded   string              `json:"status_added" example:"2025-03-14T10:21:00Z"`
	StatusAddedBy string              `json:"status_added_by" example:"javerage@uw.edu"`
}

type CourseDetail struct {
	ID            int            `json:"id" example:"7"`
	Name          string         `json:"name" example:"BANA 310 B"`
	CourseYear    int            `json:"course_year" example:"2025"`
	CourseQuarter int            `json:"course_quarter" example:"2"`
	SisCourseID   string         `json:"sis_course_id" example:"2025-spring-BANA-310-B"`
	HubURL        string         `json:"hub_url" example:"https://jupyter.rttl.uw.edu/2025-spring-BANA-310-B"`
	Statuses      []CourseStatus `json:"statuses"`
	HubAdmins     []string       `json:"hub_admins"`
}

type CourseConfiguration struct {
	ConfigurationApplied  bool   `json:"configuration_applied" example:"true" format:"bool"`
	CPURequest            int    `json:"cpu_request" example:"2"`
	MemoryRequest         int    `json:"memory_request" example:"4"`
	StorageRequest        int    `json:"storage_request" example:"5"`
	ImageURI              string `json:"image_uri" example:"us-west1-docker.pkg.dev/uwit-mci-axdd/rttl-images/jupyter-scipy-notebook"`
	ImageTag              string `json:"image_tag" example:"2.7.1"`
	FeaturesRequest       string `json:"features_request" example:"nfs"`
	ConfigurationComments string `json:"configuration_comments" example:"please enable the shared drive"`
}

type ManageResponse struct {
	Error      bool                  `json:"error" example:"false" format:"bool"`
	Course     CourseDetail          `json:"course"`
	Quarter    string                `json:"quarter" example:"Spring"`
	Configs    []CourseConfiguration `json:"configs"`
	CanRequest bool                  `json:"can_request" example:"true" format:"bool"`
}

type LabelValue struct {
	Label string `json:"label" example:"2 CPU"`
	Value string `json:"value" example:"2"`
}

type ConfigurationForm struct {
	CPURequest            string `json:"cpu_request" example:"1"`
	MemoryRequest         string `json:"memory_request" example:"2"`
	StorageRequest        string `json:"storage_request" example:"5"`
	ContainerImage        string `json:"container_image" example:"scipy"`
	CustomImageURL        string `json:"custom_image_url" example:""`
	CustomImageTag        string `json:"custom_image_tag" example:""`
	FeatureNFS            bool   `json:"feature_nfs" example:"false" format:"bool"`
	FeatureBinderhub      bool   `json:"feature_binderhub" example:"false" format:"bool"`
	GitpullerURI          string `json:"gitpuller_uri" example:"https://github.com/example/materials"`
	GitpullerTag          string `json:"gitpuller_tag" example:"main"`
	GitpullerSyncDir      string `json:"gitpuller_sync_dir" example:"COURSE_MATERIALS"`
	AdditionalAdmins      string `json:"additional_admins" example:"bill,sea"`
	ConfigurationComments string `json:"configuration_comments" example:""`
}

type RequestFormResponse struct {
	Error          bool              `json:"error" example:"false" format:"bool"`
	Form           ConfigurationForm `json:"form"`
	CPUChoices     []LabelValue      `json:"cpu_choices"`
	MemoryChoices  []LabelValue      `json:"memory_choices"`
	StorageChoices []LabelValue      `json:"storage_choices"`
	ImageChoices   []LabelValue      `json:"image_choices"`
	CanRequest     bool              `json:"can_request" example:"true" format:"bool"`
}

type RequestSubmitResponse struct {
	Error   bool   `json:"error" example:"false" format:"bool"`
	Message string `json:"message" example:"hub request submitted"`
	Status  string `json:"status" example:"requested"`
}

type HealthDatabaseResponse struct {
	Error   bool     `json:"error" example:"false" format:"bool"`
	Message string   `json:"message" example:"database is alive"`
	Tables  []string `json:"tables"`
}

type HealthRedisResponse struct {
	Error   bool   `json:"error" example:"false" format:"bool"`
	Message string `json:"message" example:"redis is alive"`
}
