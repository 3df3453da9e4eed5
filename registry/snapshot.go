package registry

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/agentchain/core"
)

// snapshotDoc is the persisted file layout: one pretty-printed JSON object
// with top-level "agents" and "chains" arrays.
type snapshotDoc struct {
	Agents []core.Agent `json:"agents"`
	Chains []core.Chain `json:"chains"`
}

func encodeSnapshot(agents []core.Agent, chains []core.Chain) ([]byte, error) {
	if agents == nil {
		agents = []core.Agent{}
	}
	if chains == nil {
		chains = []core.Chain{}
	}
	data, err := json.MarshalIndent(snapshotDoc{Agents: agents, Chains: chains}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("registry: encode snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (snapshotDoc, error) {
	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return snapshotDoc{}, fmt.Errorf("registry: decode snapshot: %w", err)
	}
	return doc, nil
}
