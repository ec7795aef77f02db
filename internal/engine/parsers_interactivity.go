package engine

func interactivityParsers() []ParserDescriptor {
	return []ParserDescriptor{
		literalParser("cursor", map[string][]Declaration{
			"cursor-auto":        {decl("cursor", "auto")},
			"cursor-default":     {decl("cursor", "default")},
			"cursor-pointer":     {decl("cursor", "pointer")},
			"cursor-wait":        {decl("cursor", "wait")},
			"cursor-text":        {decl("cursor", "text")},
			"cursor-move":        {decl("cursor", "move")},
			"cursor-help":        {decl("cursor", "help")},
			"cursor-not-allowed": {decl("cursor", "not-allowed")},
			"cursor-none":        {decl("cursor", "none")},
			"cursor-grab":        {decl("cursor", "grab")},
			"cursor-grabbing":    {decl("cursor", "grabbing")},
			"cursor-crosshair":   {decl("cursor", "crosshair")},
			"cursor-zoom-in":     {decl("cursor", "zoom-in")},
			"cursor-zoom-out":    {decl("cursor", "zoom-out")},
		}),
		literalParser("user-select", map[string][]Declaration{
			"select-none": {decl("user-select", "none")},
			"select-text": {decl("user-select", "text")},
			"select-all":  {decl("user-select", "all")},
			"select-auto": {decl("user-select", "auto")},
		}),
		literalParser("pointer-events", map[string][]Declaration{
			"pointer-events-none": {decl("pointer-events", "none")},
			"pointer-events-auto": {decl("pointer-events", "auto")},
		}),
		literalParser("resize", map[string][]Declaration{
			"resize-none": {decl("resize", "none")},
			"resize-y":    {decl("resize", "vertical")},
			"resize-x":    {decl("resize", "horizontal")},
			"resize":      {decl("resize", "both")},
		}),
		literalParser("scroll-behavior", map[string][]Declaration{
			"scroll-auto":   {decl("scroll-behavior", "auto")},
			"scroll-smooth": {decl("scroll-behavior", "smooth")},
		}),
		literalParser("appearance", map[string][]Declaration{
			"appearance-none": {decl("appearance", "none")},
			"appearance-auto": {decl("appearance", "auto")},
		}),
	}
}
