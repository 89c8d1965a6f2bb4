package live

// BorderMode controls edge antialiasing of a visual.
type BorderMode uint8

const (
	BorderModeInherit BorderMode = iota
	BorderModeSoft
	BorderModeHard
)

// StrokeCap is the shape at the end of a stroke or dash.
type StrokeCap uint8

const (
	StrokeCapFlat StrokeCap = iota
	StrokeCapSquare
	StrokeCapRound
	StrokeCapTriangle
)

// StrokeLineJoin is the shape where two stroke segments meet.
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

// ColorSpace selects the color interpolation space.
type ColorSpace uint8

const (
	ColorSpaceAuto ColorSpace = iota
	ColorSpaceHsl
	ColorSpaceRgb
	ColorSpaceHslLinear
	ColorSpaceRgbLinear
)

// MappingMode selects absolute or bounds-relative gradient coordinates.
type MappingMode uint8

const (
	MappingModeAbsolute MappingMode = iota
	MappingModeRelative
)

// FillRule decides which regions of overlapping outlines are filled.
type FillRule uint8

const (
	FillRuleAlternate FillRule = iota // even-odd
	FillRuleWinding                   // non-zero
)

// FigureLoop says whether a path figure is closed.
type FigureLoop uint8

const (
	FigureLoopOpen FigureLoop = iota
	FigureLoopClosed
)

// CombineMode is a boolean geometry operator.
type CombineMode uint8

const (
	CombineModeUnion     CombineMode = iota // A or B
	CombineModeExclude                      // A and not B
	CombineModeIntersect                    // A and B
	CombineModeXor                          // A or B but not both
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
