package relayer

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/informalsystems/relayer-e2e/framework/ibc"
)

// Config is the subset of the relayer's own TOML configuration the harness
// understands; everything else in the file stays opaque to us.
type Config struct {
	Chains []ChainConfig `toml:"chains"`
}

// ChainConfig identifies one chain entry in the relayer configuration.
type ChainConfig struct {
	ID string `toml:"id"`
}

// LoadChainIDs reads the relayer configuration at path and returns the ids
// of the first two configured chains, in file order.
func LoadChainIDs(path string) (ibc.ChainID, ibc.ChainID, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return "", "", fmt.Errorf("failed to decode relayer config: %w", err)
	}
	if len(cfg.Chains) < 2 {
		return "", "", fmt.Errorf("relayer config lists %d chain(s), need at least 2", len(cfg.Chains))
	}
	return ibc.ChainID(cfg.Chains[0].ID), ibc.ChainID(cfg.Chains[1].ID), nil
}
