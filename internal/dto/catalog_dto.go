package dto

// CatalogJobResponse acknowledges an accepted catalog admin job.
type CatalogJobResponse struct {
	OK      bool   `json:"ok"`
	Action  string `json:"action"`
	Message string `json:"message"`
}

// PublishIngestCatalogMessage is the payload of an ingest job event.
type PublishIngestCatalogMessage struct {
	CatalogFile string `json:"catalog_file"`
}
