package desc

// BorderMode controls how a visual's edges are antialiased.
type BorderMode uint8

const (
	BorderModeInherit BorderMode = iota // inherit from the parent visual
	BorderModeSoft                      // antialiased edges
	BorderModeHard                      // aliased edges
)

// StrokeCap is the shape at the end of an open stroke or dash.
type StrokeCap uint8

const (
	StrokeCapFlat StrokeCap = iota
	StrokeCapSquare
	StrokeCapRound
	StrokeCapTriangle
)

// StrokeLineJoin is the shape used where two stroke segments meet.
type StrokeLineJoin uint8

const (
	StrokeLineJoinMiter StrokeLineJoin = iota
	StrokeLineJoinBevel
	StrokeLineJoinRound
	StrokeLineJoinMiterOrBevel
)

// GradientExtendMode selects how a gradient paints outside its stops.
type GradientExtendMode uint8

const (
	GradientExtendModeClamp GradientExtendMode = iota
	GradientExtendModeWrap
	GradientExtendModeMirror
)

// ColorSpace selects the space colors are interpolated in.
type ColorSpace uint8

const (
	ColorSpaceAuto ColorSpace = iota
	ColorSpaceHsl
	ColorSpaceRgb
	ColorSpaceHslLinear
	ColorSpaceRgbLinear
)

// MappingMode selects whether gradient coordinates are absolute or relative
// to the painted bounds.
type MappingMode uint8

const (
	MappingModeAbsolute MappingMode = iota
	MappingModeRelative
)

// FillRule decides which regions of a self-overlapping geometry are filled.
type FillRule uint8

const (
	FillRuleAlternate FillRule = iota // even-odd
	FillRuleWinding                   // non-zero
)

// FigureLoop says whether a path figure is closed back to its start point.
type FigureLoop uint8

const (
	FigureLoopOpen FigureLoop = iota
	FigureLoopClosed
)

// CombineMode is the boolean operator of a CanvasCombination.
type CombineMode uint8

const (
	CombineModeUnion CombineMode = iota
	CombineModeExclude
	CombineModeIntersect
	CombineModeXor
)

// CompositeMode is the blend operator of a CompositeEffect.
type CompositeMode uint8

const (
	CompositeModeSourceOver CompositeMode = iota
	CompositeModeDestinationOver
	CompositeModeSourceIn
	CompositeModeDestinationIn
	CompositeModeSourceOut
	CompositeModeDestinationOut
	CompositeModeSourceAtop
	CompositeModeDestinationAtop
	CompositeModeXor
	CompositeModeAdd
	CompositeModeCopy
	CompositeModeBoundedCopy
	CompositeModeMaskInvert
)

// DropShadowSourcePolicy selects what a drop shadow is cast from.
type DropShadowSourcePolicy uint8

const (
	DropShadowSourcePolicyDefault DropShadowSourcePolicy = iota
	DropShadowSourcePolicyInheritFromVisualContent
)
