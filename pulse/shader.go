package pulse

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// CompileShader creates a shader module from wgsl source. Compile
// errors are logged together with the label of the shader.
func CompileShader(dev *wgpu.Device, label, code string) (*wgpu.ShaderModule, error) {
	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      label,
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: code},
	})

	if err != nil {
		slog.Error("Shader compilation failed",
			slog.String("shader", label),
			slog.String("error", err.Error()),
		)

		return nil, fmt.Errorf("compile shader %q: %w", label, err)
	}

	return shader, nil
}
