// Package resume wires the extraction pipeline together: PDF text →
// contact fields + skills → classification → summary → storage.
package resume

import (
	"context"
	"errors"
	"fmt"

	"resume-extractor/internal/classify"
	"resume-extractor/internal/extract"
	"resume-extractor/internal/logger"
	"resume-extractor/internal/pdf"
	"resume-extractor/internal/storage"
	"resume-extractor/internal/summary"
)

// ErrExtractionFailed marks a resume from which nothing could be
// extracted. Callers must report it as a failed extraction, not as a
// valid zero-skill resume.
var ErrExtractionFailed = errors.New("resume: extraction produced no data")

// Outcome is the full result of processing one resume.
type Outcome struct {
	Record         extract.Record  `json:"record"`
	Classification classify.Result `json:"classification"`
	Summary        string          `json:"summary"`
}

// Processor runs the pipeline. All collaborators are injected; the
// store may be nil when persistence is not wanted.
type Processor struct {
	textExtractor  pdf.TextExtractor
	fieldExtractor *extract.FieldExtractor
	skillExtractor *extract.SkillExtractor
	classifier     *classify.Classifier
	summarizer     *summary.Summarizer
	store          *storage.Store
}

func NewProcessor(
	textExtractor pdf.TextExtractor,
	classifier *classify.Classifier,
	summarizer *summary.Summarizer,
	store *storage.Store,
) *Processor {
	return &Processor{
		textExtractor:  textExtractor,
		fieldExtractor: extract.NewFieldExtractor(),
		skillExtractor: extract.NewSkillExtractor(),
		classifier:     classifier,
		summarizer:     summarizer,
		store:          store,
	}
}

// Extract pulls text out of the PDF at path and derives the
// structured record. A document that yields no text returns an empty
// record and ErrExtractionFailed.
func (p *Processor) Extract(ctx context.Context, path string) (extract.Record, error) {
	text, err := p.textExtractor.ExtractFile(ctx, path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("text extraction failed")
		return extract.Record{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	fields := p.fieldExtractor.Extract(text)
	skills := p.skillExtractor.Extract(text)

	record := extract.Record{
		Name:    fields.Name,
		Email:   fields.Email,
		Phone:   fields.Phone,
		Skills:  skills.Sorted(),
		RawText: text,
	}
	if record.IsEmpty() {
		return extract.Record{}, ErrExtractionFailed
	}
	return record, nil
}

// Process runs extraction, classification and summarization without
// persisting anything.
func (p *Processor) Process(ctx context.Context, path string) (Outcome, error) {
	record, err := p.Extract(ctx, path)
	if err != nil {
		return Outcome{}, err
	}

	classification := p.classifier.Classify(record.Skills)
	summaryText := p.summarizer.Summarize(ctx, record)

	logger.Info().
		Int("skills", len(record.Skills)).
		Strs("categories", classification.Labels).
		Msg("resume processed")

	return Outcome{
		Record:         record,
		Classification: classification,
		Summary:        summaryText,
	}, nil
}

// ProcessAndStore runs the pipeline and saves the outcome under the
// original upload filename, returning the stored id.
func (p *Processor) ProcessAndStore(ctx context.Context, path, filename string) (string, Outcome, error) {
	outcome, err := p.Process(ctx, path)
	if err != nil {
		return "", Outcome{}, err
	}
	if p.store == nil {
		return "", outcome, nil
	}

	category := storage.NewCategory(outcome.Classification.Labels...)
	id, err := p.store.Save(outcome.Record, filename, outcome.Summary, category)
	if err != nil {
		return "", outcome, fmt.Errorf("save result: %w", err)
	}
	return id, outcome, nil
}
