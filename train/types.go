package train

// LabeledPoint is one training record: a scalar label and a fixed-length
// feature vector. Points are never mutated after construction; the trainer
// partitions them once and reuses the partitions across all iterations.
type LabeledPoint struct {
	Label    float64
	Features []float64
}

// Loss selects the per-record gradient contribution.
type Loss int

const (
	// SquaredL1 is least-squares loss with optional L1 (lasso) shrinkage
	// applied after each descent step.
	SquaredL1 Loss = iota
	// Hinge is the subgradient of hinge loss for linear classification.
	// Labels must be -1 or +1.
	Hinge
)

func (l Loss) String() string {
	switch l {
	case SquaredL1:
		return "squared+l1"
	case Hinge:
		return "hinge"
	default:
		return "unknown"
	}
}

// Config holds the fixed hyperparameters of one training run.
type Config struct {
	// Partitions is the number of parallel gradient workers. Values below 1
	// mean one partition.
	Partitions int

	// Iterations is the fixed number of synchronous descent steps. There is
	// no convergence check.
	Iterations int

	// StepSize is the base learning rate.
	StepSize float64

	// DecaySteps switches the whole run from a constant step size to
	// StepSize/sqrt(t). The policy is fixed for the run; it changes final
	// weights materially.
	DecaySteps bool

	Loss Loss

	// Lambda is the L1 regularization strength. Only used with SquaredL1.
	Lambda float64

	// FitIntercept tracks an intercept term separately from the weight
	// coefficients. The intercept is never regularized.
	FitIntercept bool
}
