package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/musicbrainz"
	"github.com/dramaseed/dramaseed-server/internal/seeding"
	"github.com/dramaseed/dramaseed-server/internal/service"
)

func (s *Server) registerSessionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createSession",
		Method:      http.MethodPost,
		Path:        "/api/v1/sessions",
		Summary:     "Create session",
		Description: "Scrapes a release page and opens a mapping session over the result",
		Tags:        []string{"Sessions"},
	}, s.handleCreateSession)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/api/v1/sessions/{id}",
		Summary:     "Get session",
		Description: "Returns a mapping session by ID",
		Tags:        []string{"Sessions"},
	}, s.handleGetSession)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteSession",
		Method:      http.MethodDelete,
		Path:        "/api/v1/sessions/{id}",
		Summary:     "Delete session",
		Description: "Discards a mapping session",
		Tags:        []string{"Sessions"},
	}, s.handleDeleteSession)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateSessionRow",
		Method:      http.MethodPatch,
		Path:        "/api/v1/sessions/{id}/rows/{rowID}",
		Summary:     "Update row",
		Description: "Edits value, inclusion or position of a session row",
		Tags:        []string{"Sessions"},
	}, s.handleUpdateRow)

	huma.Register(s.api, huma.Operation{
		OperationID: "assignRowIdentifier",
		Method:      http.MethodPost,
		Path:        "/api/v1/sessions/{id}/rows/{rowID}/identifier",
		Summary:     "Assign identifier",
		Description: "Resolves a pasted identifier or catalog URL and assigns it to a row",
		Tags:        []string{"Sessions"},
	}, s.handleAssignIdentifier)

	huma.Register(s.api, huma.Operation{
		OperationID: "confirmSessionDate",
		Method:      http.MethodPost,
		Path:        "/api/v1/sessions/{id}/confirm-date",
		Summary:     "Confirm release date",
		Description: "Marks the session's estimated release date as confirmed",
		Tags:        []string{"Sessions"},
	}, s.handleConfirmDate)

	huma.Register(s.api, huma.Operation{
		OperationID: "buildSessionSeed",
		Method:      http.MethodPost,
		Path:        "/api/v1/sessions/{id}/seed",
		Summary:     "Build seed form",
		Description: "Builds the release seed and returns the submission form payload",
		Tags:        []string{"Sessions"},
	}, s.handleBuildSeed)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSessionCredits",
		Method:      http.MethodGet,
		Path:        "/api/v1/sessions/{id}/credits",
		Summary:     "Export credits",
		Description: "Exports the session's credits as text lines or machine-readable JSON",
		Tags:        []string{"Sessions"},
	}, s.handleGetCredits)
}

// CreateSessionRequest is the request body for opening a session. Either a
// page URL to fetch or already fetched markup must be given.
type CreateSessionRequest struct {
	URL      string `json:"url,omitempty" validate:"required_without=HTML,omitempty,url" doc:"Release page URL"`
	HTML     string `json:"html,omitempty" doc:"Raw page markup, parsed instead of fetching"`
	Template string `json:"template,omitempty" doc:"Template name, picked by URL when empty"`
}

// CreateSessionInput wraps the create session request for Huma.
type CreateSessionInput struct {
	Body CreateSessionRequest
}

// SessionOutput wraps a session for Huma.
type SessionOutput struct {
	Body domain.Session
}

func (s *Server) handleCreateSession(ctx context.Context, input *CreateSessionInput) (*SessionOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	var session *domain.Session
	var err error
	if input.Body.HTML != "" {
		session, err = s.services.Sessions.ExtractHTML(input.Body.HTML, input.Body.Template, input.Body.URL)
	} else {
		session, err = s.services.Sessions.Extract(ctx, input.Body.URL)
	}
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Body: *session}, nil
}

// GetSessionInput identifies a session.
type GetSessionInput struct {
	ID string `path:"id" doc:"Session ID"`
}

func (s *Server) handleGetSession(_ context.Context, input *GetSessionInput) (*SessionOutput, error) {
	session, err := s.services.Sessions.Get(input.ID)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Body: *session}, nil
}

func (s *Server) handleDeleteSession(_ context.Context, input *GetSessionInput) (*struct{}, error) {
	if err := s.services.Sessions.Delete(input.ID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

// UpdateRowRequest is the request body for editing a row. Absent fields stay
// untouched.
type UpdateRowRequest struct {
	Value         *string `json:"value,omitempty" doc:"New display value"`
	Included      *bool   `json:"included,omitempty" doc:"Whether the row is part of the seed"`
	Position      *int    `json:"position,omitempty" validate:"omitempty,min=1" doc:"New row position"`
	CatalogNumber *string `json:"catalog_number,omitempty" doc:"New catalog number, label rows only"`
}

// UpdateRowInput wraps the row update request for Huma.
type UpdateRowInput struct {
	ID    string `path:"id" doc:"Session ID"`
	RowID string `path:"rowID" doc:"Row ID"`
	Body  UpdateRowRequest
}

func (s *Server) handleUpdateRow(_ context.Context, input *UpdateRowInput) (*SessionOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	session, err := s.services.Sessions.UpdateRow(input.ID, input.RowID, service.RowUpdate{
		Value:         input.Body.Value,
		Included:      input.Body.Included,
		Position:      input.Body.Position,
		CatalogNumber: input.Body.CatalogNumber,
	})
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Body: *session}, nil
}

// AssignIdentifierRequest is the request body for assigning an identifier.
type AssignIdentifierRequest struct {
	Identifier string `json:"identifier" validate:"required" doc:"Catalog URL or bare identifier"`
}

// AssignIdentifierInput wraps the identifier request for Huma.
type AssignIdentifierInput struct {
	ID    string `path:"id" doc:"Session ID"`
	RowID string `path:"rowID" doc:"Row ID"`
	Body  AssignIdentifierRequest
}

// AssignIdentifierResponse carries the updated session plus the resolved
// entity's display data.
type AssignIdentifierResponse struct {
	Session    domain.Session         `json:"session"`
	Resolution musicbrainz.Resolution `json:"resolution"`
}

// AssignIdentifierOutput wraps the identifier response for Huma.
type AssignIdentifierOutput struct {
	Body AssignIdentifierResponse
}

func (s *Server) handleAssignIdentifier(ctx context.Context, input *AssignIdentifierInput) (*AssignIdentifierOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	session, resolution, err := s.services.Sessions.AssignIdentifier(ctx, input.ID, input.RowID, input.Body.Identifier)
	if err != nil {
		return nil, err
	}
	return &AssignIdentifierOutput{Body: AssignIdentifierResponse{Session: *session, Resolution: *resolution}}, nil
}

func (s *Server) handleConfirmDate(_ context.Context, input *GetSessionInput) (*SessionOutput, error) {
	session, err := s.services.Sessions.ConfirmDate(input.ID)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Body: *session}, nil
}

// BuildSeedRequest is the request body for building a seed.
type BuildSeedRequest struct {
	TracksPerMedium []int `json:"tracks_per_medium,omitempty" doc:"Track count per medium, overrides the default layout"`
}

// BuildSeedInput wraps the seed request for Huma.
type BuildSeedInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body BuildSeedRequest
}

// SeedFormOutput wraps the submission form payload for Huma.
type SeedFormOutput struct {
	Body seeding.FormPayload
}

func (s *Server) handleBuildSeed(_ context.Context, input *BuildSeedInput) (*SeedFormOutput, error) {
	payload, err := s.services.Seeds.BuildForm(input.ID, input.Body.TracksPerMedium)
	if err != nil {
		return nil, err
	}
	return &SeedFormOutput{Body: payload}, nil
}

// GetCreditsInput selects the credits export format.
type GetCreditsInput struct {
	ID     string `path:"id" doc:"Session ID"`
	Format string `query:"format" enum:"text,json" default:"text" doc:"Export format"`
}

// CreditsResponse contains one credits export.
type CreditsResponse struct {
	Format  string `json:"format" doc:"Export format"`
	Content string `json:"content" doc:"Exported credits"`
}

// CreditsOutput wraps the credits response for Huma.
type CreditsOutput struct {
	Body CreditsResponse
}

func (s *Server) handleGetCredits(_ context.Context, input *GetCreditsInput) (*CreditsOutput, error) {
	if input.Format == "json" {
		data, err := s.services.Seeds.CreditsJSON(input.ID)
		if err != nil {
			return nil, err
		}
		return &CreditsOutput{Body: CreditsResponse{Format: "json", Content: string(data)}}, nil
	}

	text, err := s.services.Seeds.CreditsText(input.ID)
	if err != nil {
		return nil, err
	}
	return &CreditsOutput{Body: CreditsResponse{Format: "text", Content: text}}, nil
}
