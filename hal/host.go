package hal

import "go.uber.org/zap"

// HostConfig describes the host surface.
type HostConfig struct {
	Title  string
	Width  int
	Height int
	Logger *zap.Logger
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Title == "" {
		c.Title = "segview"
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

type hostHAL struct {
	logger *zap.Logger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		logger: cfg.Logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() *zap.Logger { return h.logger }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input        { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
