package models

// OverrideQueryResponse is returned by the override encoding endpoint.
type OverrideQueryResponse struct {
	// Query is a ready-to-append query string fragment ("config=<base64>").
	Query string `json:"query"`

	// Value is the bare base64 value of the config parameter.
	Value string `json:"value"`
}
