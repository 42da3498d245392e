package pipeline

// Processor is a single front-end stage: it reads what earlier stages
// left on the context and adds its own products and diagnostics.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline chains front-end stages over one compilation unit. Every
// stage runs even when an earlier one recorded errors, so a broken
// unit surfaces diagnostics from all stages at once; callers gate on
// HasErrors before handing the result to the evaluator.
type Pipeline []Processor

func New(stages ...Processor) Pipeline {
	return Pipeline(stages)
}

func (p Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, stage := range p {
		ctx = stage.Process(ctx)
	}
	return ctx
}
