package service

type Services interface {
	Share() ShareService
	Config() ConfigService
}

type services struct {
	shareService  ShareService
	configService ConfigService
}

// Options are the runtime switches taken from the command line.
type Options struct {
	// Terminal forces terminal prompts instead of desktop dialogs.
	Terminal bool
	// NoCopy skips the clipboard step after a link was created.
	NoCopy bool
}

func NewServices(opts Options) Services {
	configService := newConfigService()
	tokenService := newTokenService()
	shareService := newShareService(configService, tokenService, selectClipboard(opts), newSeafileService, opts.Terminal)
	return &services{
		shareService:  shareService,
		configService: configService,
	}
}

func (s services) Share() ShareService {
	return s.shareService
}

func (s services) Config() ConfigService {
	return s.configService
}
