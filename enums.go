package grove

import (
	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/live"
)

var borderModes = [...]live.BorderMode{
	desc.BorderModeInherit: live.BorderModeInherit,
	desc.BorderModeSoft:    live.BorderModeSoft,
	desc.BorderModeHard:    live.BorderModeHard,
}

var strokeCaps = [...]live.StrokeCap{
	desc.StrokeCapFlat:     live.StrokeCapFlat,
	desc.StrokeCapSquare:   live.StrokeCapSquare,
	desc.StrokeCapRound:    live.StrokeCapRound,
	desc.StrokeCapTriangle: live.StrokeCapTriangle,
}

var lineJoins = [...]live.StrokeLineJoin{
	desc.StrokeLineJoinMiter:        live.StrokeLineJoinMiter,
	desc.StrokeLineJoinBevel:        live.StrokeLineJoinBevel,
	desc.StrokeLineJoinRound:        live.StrokeLineJoinRound,
	desc.StrokeLineJoinMiterOrBevel: live.StrokeLineJoinMiterOrBevel,
}

var extendModes = [...]live.GradientExtendMode{
	desc.GradientExtendModeClamp:  live.GradientExtendModeClamp,
	desc.GradientExtendModeWrap:   live.GradientExtendModeWrap,
	desc.GradientExtendModeMirror: live.GradientExtendModeMirror,
}

var colorSpaces = [...]live.ColorSpace{
	desc.ColorSpaceAuto:      live.ColorSpaceAuto,
	desc.ColorSpaceHsl:       live.ColorSpaceHsl,
	desc.ColorSpaceRgb:       live.ColorSpaceRgb,
	desc.ColorSpaceHslLinear: live.ColorSpaceHslLinear,
	desc.ColorSpaceRgbLinear: live.ColorSpaceRgbLinear,
}

var mappingModes = [...]live.MappingMode{
	desc.MappingModeAbsolute: live.MappingModeAbsolute,
	desc.MappingModeRelative: live.MappingModeRelative,
}

var fillRules = [...]live.FillRule{
	desc.FillRuleAlternate: live.FillRuleAlternate,
	desc.FillRuleWinding:   live.FillRuleWinding,
}

var figureLoops = [...]live.FigureLoop{
	desc.FigureLoopOpen:   live.FigureLoopOpen,
	desc.FigureLoopClosed: live.FigureLoopClosed,
}

var combineModes = [...]live.CombineMode{
	desc.CombineModeUnion:     live.CombineModeUnion,
	desc.CombineModeExclude:   live.CombineModeExclude,
	desc.CombineModeIntersect: live.CombineModeIntersect,
	desc.CombineModeXor:       live.CombineModeXor,
}

var compositeModes = [...]live.CompositeMode{
	desc.CompositeModeSourceOver:      live.CompositeModeSourceOver,
	desc.CompositeModeDestinationOver: live.CompositeModeDestinationOver,
	desc.CompositeModeSourceIn:        live.CompositeModeSourceIn,
	desc.CompositeModeDestinationIn:   live.CompositeModeDestinationIn,
	desc.CompositeModeSourceOut:       live.CompositeModeSourceOut,
	desc.CompositeModeDestinationOut:  live.CompositeModeDestinationOut,
	desc.CompositeModeSourceAtop:      live.CompositeModeSourceAtop,
	desc.CompositeModeDestinationAtop: live.CompositeModeDestinationAtop,
	desc.CompositeModeXor:             live.CompositeModeXor,
	desc.CompositeModeAdd:             live.CompositeModeAdd,
	desc.CompositeModeCopy:            live.CompositeModeCopy,
	desc.CompositeModeBoundedCopy:     live.CompositeModeBoundedCopy,
	desc.CompositeModeMaskInvert:      live.CompositeModeMaskInvert,
}

var shadowPolicies = [...]live.DropShadowSourcePolicy{
	desc.DropShadowSourcePolicyDefault:                  live.DropShadowSourcePolicyDefault,
	desc.DropShadowSourcePolicyInheritFromVisualContent: live.DropShadowSourcePolicyInheritFromVisualContent,
}

// mapEnum looks v up in table. A value with no entry fails n.
func mapEnum[D ~uint8, L any](n desc.Node, name string, table []L, v D) L {
	if int(v) >= len(table) {
		fail(n, ErrInvalidNode, "%s %d out of range", name, v)
	}
	return table[v]
}
