package srv

import (
	"fmt"

	"github.com/vagledaren/vagledaren/pkg/ai"
	"github.com/vagledaren/vagledaren/pkg/ai/openai"
)

type AIConfig struct {
	Token string       `toml:"token"`
	Proxy string       `toml:"proxy"`
	Model ai.ModelName `toml:"model"`
}

// SetupChatDriver builds the chat completion driver from config.
func SetupChatDriver(cfg AIConfig) (ai.ChatAI, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("ai token is empty")
	}
	return openai.New(cfg.Token, cfg.Proxy, cfg.Model), nil
}

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		driver, err := SetupChatDriver(cfg)
		if err != nil {
			panic(err)
		}
		s.ai = driver
	}
}
