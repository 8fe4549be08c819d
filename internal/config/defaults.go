package config

const (
	// DefaultRoot is the default project root
	DefaultRoot = "."
	// DefaultWorkers bounds how many simulations run at once. Each job
	// shells out to a heavyweight simulator process, so this is a hard
	// cap rather than a hint.
	DefaultWorkers = 18
	// DefaultOutputJSONFile is the persisted results file name
	DefaultOutputJSONFile = "results.json"
)

// Directory names under the project root. The layout mirrors what the
// testbenches and the simulator expect.
const (
	DesignDirName      = "designs"
	TestDirName        = "tests"
	OutputDirName      = "output"
	LogsDirName        = "logs"
	TranscriptDirName  = "transcript"
	CompilationDirName = "compilation"
	WavesDirName       = "waves"
	WorkDirName        = "work"
	CellLibraryName    = "SAED32_lib"
)
