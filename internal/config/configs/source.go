package configs

// Source kinds understood by the campaign source factory.
const (
	SourceSeed     = "seed"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Source selects where campaign records are read from. With "file" the
// FixturePath must point at a YAML fixture; "postgres" uses the PSQL_
// section.
type Source struct {
	Kind        string `env:"KIND" envDefault:"seed" validate:"oneof=seed file postgres"`
	FixturePath string `env:"FIXTURE_PATH" validate:"required_if=Kind file"`
}
