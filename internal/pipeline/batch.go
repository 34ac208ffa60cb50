package pipeline

import (
	"runtime"
	"sync"
)

// TransformDraw runs the vertex stage over every vertex of a draw. All
// invocations observe the same CameraTransform; none of them share any other
// state, so the batch is split into contiguous ranges and handed to worker
// goroutines. workers <= 0 means one worker per CPU.
//
// The output slice is index-aligned with the input; the order vertices are
// processed in is unspecified.
func TransformDraw(inputs []VertexInput, camera CameraTransform, workers int) []VertexOutput {
	outputs := make([]VertexOutput, len(inputs))
	if len(inputs) == 0 {
		return outputs
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}
	if workers == 1 {
		for i, in := range inputs {
			outputs[i] = TransformVertex(in, camera)
		}
		return outputs
	}

	var wg sync.WaitGroup
	chunk := (len(inputs) + workers - 1) / workers
	for start := 0; start < len(inputs); start += chunk {
		end := start + chunk
		if end > len(inputs) {
			end = len(inputs)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				outputs[i] = TransformVertex(inputs[i], camera)
			}
		}(start, end)
	}
	wg.Wait()

	return outputs
}
