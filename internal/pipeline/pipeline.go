// ABOUTME: Pipeline driver: sequences raw, silver, gold, and export stages.
// ABOUTME: Strictly sequential state machine; fail-fast, no rollback.
package pipeline

import (
	"fmt"
	"os"

	"ordermart/internal/config"
	"ordermart/internal/dataset"
	"ordermart/internal/logging"
	"ordermart/internal/storage"
)

// State is the pipeline driver's position in the run.
type State string

const (
	StateNotStarted          State = "not_started"
	StateInputsValidated     State = "inputs_validated"
	StateStagingLoaded       State = "staging_loaded"
	StateTransformDefined    State = "transform_defined"
	StateSummaryMaterialized State = "summary_materialized"
	StateExported            State = "exported"
	StateDone                State = "done"

	// StateFailed is terminal and reachable only from the missing-input
	// check. Later failures propagate as errors without entering it; any
	// staging tables already committed stay as written.
	StateFailed State = "failed"
)

// Pipeline runs the full ETL over one configuration. Not safe for concurrent
// use; exactly one pipeline instance runs at a time against a given database.
type Pipeline struct {
	cfg   *config.Config
	state State
	db    *storage.DB
}

// New creates a pipeline driver for the given configuration.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg, state: StateNotStarted}
}

// State returns the driver's current state.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the pipeline end to end: validate inputs, load staging,
// define the transform view, materialize summaries, export results. Each
// stage runs only after its predecessor completed without error. The
// database is opened only after inputs validate and is closed on every
// exit path.
func (p *Pipeline) Run() error {
	if err := p.cfg.EnsureDirs(); err != nil {
		return err
	}

	if err := p.validateInputs(); err != nil {
		p.state = StateFailed
		return err
	}
	p.state = StateInputsValidated
	logging.Info().Msg("Input files validated")

	db, err := storage.Open(p.cfg.DBPath)
	if err != nil {
		return err
	}
	p.db = db
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Closing database")
		}
	}()

	if err := p.loadStaging(); err != nil {
		return err
	}
	p.state = StateStagingLoaded

	if err := p.defineTransform(); err != nil {
		return err
	}
	p.state = StateTransformDefined

	if err := p.materializeSummaries(); err != nil {
		return err
	}
	p.state = StateSummaryMaterialized

	if err := p.export(); err != nil {
		return err
	}
	p.state = StateExported

	p.state = StateDone
	logging.Info().Str("output_dir", p.cfg.OutputDir).Msg("ETL pipeline completed")
	return nil
}

// validateInputs checks that every source file exists before anything is
// written, so a missing input never leaves partial state behind.
func (p *Pipeline) validateInputs() error {
	for _, s := range storage.StagingSchemas() {
		path := p.cfg.InputPath(s.Name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return &MissingInputError{Dataset: s.Name, Path: path}
			}
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return nil
}

// loadStaging reads, cleans, and validates each source dataset, writes its
// cleaned copy, replaces its staging table, and emits the raw SQL artifacts.
func (p *Pipeline) loadStaging() error {
	for _, s := range storage.StagingSchemas() {
		srcPath := p.cfg.InputPath(s.Name)

		raw, err := dataset.ReadCSV(srcPath)
		if err != nil {
			return err
		}

		cleaned := dataset.Clean(raw)
		if err := s.Validate(cleaned); err != nil {
			return err
		}

		cleanedPath := p.cfg.CleanedPath(s.Name)
		if err := dataset.WriteCSV(cleaned, cleanedPath); err != nil {
			return fmt.Errorf("write cleaned copy of %s: %w", s.Name, err)
		}

		if err := p.db.ReplaceStaging(s, cleaned); err != nil {
			return err
		}

		if err := p.writeRawArtifacts(s, srcPath); err != nil {
			return err
		}

		logging.Info().
			Str("dataset", s.Name).
			Int("rows_in", len(raw.Rows)).
			Int("rows_loaded", len(cleaned.Rows)).
			Str("cleaned_csv", cleanedPath).
			Msg("Staging table loaded")
	}
	return nil
}

func (p *Pipeline) defineTransform() error {
	if err := p.db.DefineTransformView(); err != nil {
		return err
	}
	if err := p.writeSilverArtifacts(); err != nil {
		return err
	}
	logging.Info().Str("view", storage.TransformedOrdersView).Msg("Transform view defined")
	return nil
}

func (p *Pipeline) materializeSummaries() error {
	steps := []struct {
		table string
		run   func() error
	}{
		{storage.FactOrdersSummaryTable, p.db.MaterializeFactOrdersSummary},
		{storage.DimCustomersTable, p.db.MaterializeDimCustomers},
		{storage.MonthlySalesSummaryTable, p.db.MaterializeMonthlySalesSummary},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return err
		}
		logging.Info().Str("table", step.table).Msg("Summary table materialized")
	}
	return p.writeGoldArtifacts()
}

// export writes each of the four result relations to its output CSV,
// overwriting any prior file.
func (p *Pipeline) export() error {
	for _, rel := range storage.OutputRelations() {
		ds, err := p.db.ReadRelation(rel.Relation)
		if err != nil {
			return err
		}
		path := p.cfg.OutputPath(rel.Name)
		if err := dataset.WriteCSV(ds, path); err != nil {
			return &ExportWriteError{Path: path, Err: err}
		}
		logging.Info().
			Str("file", path).
			Int("rows", len(ds.Rows)).
			Msg("Result exported")
	}
	return nil
}
