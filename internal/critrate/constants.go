package critrate

// Formula constants
const (
	// WitPivot is the WIT value at which the exponential term equals 1
	WitPivot = 20
	// WitGrowth is the per-point growth of the WIT bonus
	WitGrowth = 1.05
	// WitBonusOffset is added to the exponential term before scaling
	WitBonusOffset = 0.005
	// BaseRateScale converts the WIT bonus into a percentage
	BaseRateScale = 5
)

// Display
const (
	// DisplayCap is the highest rate shown without annotation. Display only.
	DisplayCap = 20.0

	// FormatRate renders an uncapped rate
	FormatRate = "%.2f%%"
	// FormatCappedRate renders the cap followed by the raw value
	FormatCappedRate = "20%% (%.2f%%)"
)

// Cache defaults
const (
	DefaultCacheSize = 512
	// CacheKeySeparator joins WIT and buff ids into a cache key
	CacheKeySeparator = " "
)
