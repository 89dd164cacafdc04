package main

import (
	"os"

	"nightsky/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
)

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(config.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, config.GetWindowTitle(), nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	if config.GetVSync() {
		glfw.SwapInterval(1)
	} else {
		// CPU frame limiter takes over
		glfw.SwapInterval(0)
	}

	return window, nil
}
