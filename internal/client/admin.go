package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"healthcare-assistant-client/internal/dto"
)

// AdminService manages the knowledge-base documents behind the assistant.
type AdminService struct {
	t *transport
}

func (s *AdminService) ListDocuments(ctx context.Context) (*Envelope[dto.DocumentList], error) {
	return get[dto.DocumentList](ctx, s.t, s.t.endpoint("/admin/documents", nil))
}

func (s *AdminService) Stats(ctx context.Context) (*Envelope[dto.KnowledgeBaseStats], error) {
	return get[dto.KnowledgeBaseStats](ctx, s.t, s.t.endpoint("/admin/stats", nil))
}

// UploadDocuments sends every file in one multipart request under the
// repeated "files" field. Indexing happens asynchronously server-side, so a
// success here only means the upload was accepted.
func (s *AdminService) UploadDocuments(ctx context.Context, files []Upload) (*Envelope[json.RawMessage], error) {
	if len(files) == 0 {
		return nil, errors.New("no files to upload")
	}
	return postMultipart[json.RawMessage](ctx, s.t, s.t.endpoint("/admin/documents/upload", nil), files)
}

func (s *AdminService) DeleteDocument(ctx context.Context, documentID string) (*Envelope[json.RawMessage], error) {
	if documentID == "" {
		return nil, errors.New("document id is required")
	}
	path := fmt.Sprintf("/admin/documents/%s", url.PathEscape(documentID))
	return del[json.RawMessage](ctx, s.t, s.t.endpoint(path, nil))
}
