package mbta

// document is the top-level JSON:API envelope returned by the MBTA v3 API.
type document struct {
	Data []resource `json:"data"`
}

type resource struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Attributes attributes `json:"attributes"`
}

// attributes holds the fields used from route and stop resources.
type attributes struct {
	LongName string `json:"long_name"`
	Name     string `json:"name"`
}
