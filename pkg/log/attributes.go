// Package log defines standard attribute keys for MCMC sampling operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in MCGo. Using these standard keys enables better
// log analysis, monitoring, and debugging of sampling workflows.
//
// The keys follow a hierarchical naming convention (e.g., "sampler.name",
// "chain.length") to enable structured log analysis and filtering.

package log

// Sampler and Operation Context
// These attributes identify the sampler type, instance, and operation being performed.
const (
	// SamplerNameKey identifies the type of sampler.
	// Examples: "UnivariateSlice", "Directional", "Gibbs"
	SamplerNameKey = "sampler.name"

	// ChainIDKey provides a unique identifier for a specific chain instance.
	// Useful for tracking multiple chains over the same target.
	// Examples: "chain-001", UUID strings
	ChainIDKey = "chain.id"

	// OperationKey specifies the sampling operation being performed.
	// Standard values: "sample", "run", "summary", "plot"
	OperationKey = "mcmc.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "slice", "gibbs", "chain", "diagnostics"
	ComponentKey = "mcmc.component"
)

// Chain Shape and Configuration
// These attributes describe the structure of the chain being driven.
const (
	// ChainLengthKey indicates the number of post-burn-in draws requested.
	ChainLengthKey = "chain.length"

	// BurnInKey indicates the number of warm-up draws discarded.
	BurnInKey = "chain.burn_in"

	// ThinKey indicates the thinning interval (1 = keep every draw).
	ThinKey = "chain.thin"

	// DimKey indicates the dimensionality of the sampled state.
	DimKey = "chain.dim"

	// DirectionsKey indicates the number of direction vectors in a sweep.
	DirectionsKey = "sampler.directions"

	// BlocksKey indicates the number of Gibbs state blocks.
	BlocksKey = "sampler.blocks"

	// WidthKey records the slice sampler's step width.
	WidthKey = "sampler.width"

	// SeedKey records the random seed for reproducibility.
	SeedKey = "config.seed"
)

// Diagnostic Counters and Performance
// These attributes capture timing and evaluation-count information.
const (
	// EvalsKey records the number of log-density evaluations.
	// The primary cost metric of a slice sampling run.
	EvalsKey = "counters.evals"

	// DrawsKey records the number of samples drawn.
	DrawsKey = "counters.draws"

	// IterationKey records the current iteration number of a running chain.
	IterationKey = "chain.iteration"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// ESSKey records the effective sample size of a finished chain.
	ESSKey = "diagnostics.ess"

	// KSStatKey records a Kolmogorov-Smirnov statistic.
	KSStatKey = "diagnostics.ks_stat"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "INVALID_DENSITY", "EXPANSION_EXCEEDED"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "DensityError", "ExpansionError", "ValidationError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard sampling operations
	OperationSample  = "sample"
	OperationRun     = "run"
	OperationSummary = "summary"
	OperationPlot    = "plot"

	// Standard error codes
	ErrorInvalidDensity    = "INVALID_DENSITY"
	ErrorExpansionExceeded = "EXPANSION_EXCEEDED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
)
