package dto

type DocumentStatus string

const (
	DocumentIndexed DocumentStatus = "indexed"
	DocumentPending DocumentStatus = "pending"
	DocumentError   DocumentStatus = "error"
)

// Document is one knowledge-base upload as the admin dashboard lists it.
type Document struct {
	ID         string         `json:"id"`
	Filename   string         `json:"filename"`
	Size       int64          `json:"size"`
	DocType    string         `json:"doc_type"`
	UploadedAt string         `json:"uploaded_at"`
	Status     DocumentStatus `json:"status"`
}

type DocumentList struct {
	Documents []Document `json:"documents"`
}

type KnowledgeBaseStats struct {
	TotalDocuments int    `json:"total_documents"`
	TotalChunks    int    `json:"total_chunks"`
	CollectionName string `json:"collection_name,omitempty"`
}
