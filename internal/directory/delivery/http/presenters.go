package http

type metadataResp struct {
	Departments []string `json:"departments"`
	Countries   []string `json:"countries"`
}
