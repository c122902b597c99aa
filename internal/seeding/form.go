package seeding

import "strings"

// Form field values the catalog's release editor expects.
const (
	formMethod = "POST"
	formTarget = "_blank"
	formName   = "musicbrainz-release-seeder"
)

// FormPayload describes the HTML form a client renders and submits to hand
// the seed over to the external release editor. The editor opens in a new
// tab.
type FormPayload struct {
	Action string  `json:"action"`
	Method string  `json:"method"`
	Target string  `json:"target"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// BuildForm flattens the seed and wraps it in the submission form pointed
// at the editor of the given catalog server.
func BuildForm(catalogURL string, seed any) (FormPayload, error) {
	fields, err := Flatten(seed)
	if err != nil {
		return FormPayload{}, err
	}
	return FormPayload{
		Action: strings.TrimSuffix(catalogURL, "/") + "/release/add",
		Method: formMethod,
		Target: formTarget,
		Name:   formName,
		Fields: fields,
	}, nil
}
