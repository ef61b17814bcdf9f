package config

import "os"

// Audit profile file names, in lookup order.
const ConfigFileName = "deptypes.yaml"

var ConfigFileNames = []string{"deptypes.yaml", "deptypes.yml", ".deptypes.yaml"}

// Environment variables
const (
	ConfigEnvVar   = "DEPTYPES_CONFIG"
	TestModeEnvVar = "DEPTYPES_TEST_MODE"
	DBEnvVar       = "DEPTYPES_DB"
)

// Audit defaults
const (
	// DefaultBound is the largest value each axiom check evaluates.
	DefaultBound   = 1000
	DefaultDBPath  = ".deptypes/audit.db"
	DefaultWorkers = 4
)

// IsTestMode indicates if the program is running in test mode.
// It is read from DEPTYPES_TEST_MODE; tests of the CLI set it directly.
var IsTestMode = os.Getenv(TestModeEnvVar) != ""

// Trusted constructor sites
const (
	ModulePath      = "github.com/funvibe/deptypes"
	RelPackagePath  = ModulePath + "/pkg/rel"
	TermPackagePath = ModulePath + "/pkg/term"
)

// Functions that mint witnesses, or tag values with terms, without a
// derivation, keyed by package path. Calls to them are the trusted base of
// the library.
var TrustedConstructors = map[string][]string{
	RelPackagePath: {
		"AxiomEq",
		"AxiomNe",
		"AxiomLe",
		"AxiomLt",
		"DefineEq",
		"DefineNe",
		"DefineLe",
		"DefineLt",
		"DefineOrdering",
	},
	TermPackagePath: {
		"Define",
		"DefineFrom",
		"DefineScoped",
	},
}

// Family names used by the audit ledger
const (
	FamilyPeano = "peano"
	FamilyLogic = "logic"
)

var Families = []string{FamilyPeano, FamilyLogic}
