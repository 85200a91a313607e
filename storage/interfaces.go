package storage

import "tscs-pipeline/models"

// ArtifactWriter is the interface any chart-artifact backend must satisfy.
type ArtifactWriter interface {
	WriteSankey(data *models.SankeyData) error
	WriteGrid(data *models.GridData) error
	WriteComparison(data *models.ComparisonData) error
}

// RecordSink is the interface for persisting classified respondent
// records for ad-hoc analysis.
type RecordSink interface {
	WriteYear(year int, records []*models.ClassifiedRecord) error
	Close() error
}
