// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Document field names.
const (
	fieldTitle  = "title"
	fieldGenres = "genres"
	fieldYear   = "year"
)

// buildIndexMapping returns the mapping for movie documents:
// title is stemmed full text, genres are exact keywords, year is numeric.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	titleField := bleve.NewTextFieldMapping()
	titleField.Analyzer = en.AnalyzerName
	titleField.Store = true
	docMapping.AddFieldMappingsAt(fieldTitle, titleField)

	genresField := bleve.NewTextFieldMapping()
	genresField.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt(fieldGenres, genresField)

	yearField := bleve.NewNumericFieldMapping()
	docMapping.AddFieldMappingsAt(fieldYear, yearField)

	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}
