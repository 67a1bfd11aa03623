package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/reflow-ui/reflow/pkg/host/memdom"
	"github.com/reflow-ui/reflow/pkg/renderer"
	"github.com/reflow-ui/reflow/pkg/vdom"
)

// profile describes one benchmark configuration.
type profile struct {
	Name       string
	ListSize   int
	Iterations int
}

var profiles = map[string]profile{
	"fast":     {Name: "fast", ListSize: 100, Iterations: 200},
	"standard": {Name: "standard", ListSize: 1_000, Iterations: 500},
	"stress":   {Name: "stress", ListSize: 10_000, Iterations: 200},
}

// diffResult is the JSON-serialisable outcome of one run.
type diffResult struct {
	Profile       string        `json:"profile"`
	ListSize      int           `json:"list_size"`
	Iterations    int           `json:"iterations"`
	MountDuration time.Duration `json:"mount_duration_ns"`
	PatchDuration time.Duration `json:"patch_duration_ns"`
	PatchPerOp    time.Duration `json:"patch_per_iteration_ns"`
	HostMoves     int           `json:"host_moves"`
	HostCreates   int           `json:"host_creates"`
	HostRemoves   int           `json:"host_removes"`
}

func diffCmd() *cobra.Command {
	var (
		profileName string
		seed        int64
		jsonOut     string
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Run keyed-diff benchmark profiles against the in-memory host",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := profiles[profileName]
			if !ok {
				return fmt.Errorf("unknown profile %q (have: fast, standard, stress)", profileName)
			}

			result := runDiffBench(p, seed)

			if jsonOut != "" {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(jsonOut, data, 0o644); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", jsonOut)
				return nil
			}

			fmt.Printf("profile    %s (%d items, %d iterations)\n", p.Name, p.ListSize, p.Iterations)
			fmt.Printf("mount      %v\n", result.MountDuration)
			fmt.Printf("patch      %v total, %v/iteration\n", result.PatchDuration, result.PatchPerOp)
			fmt.Printf("host ops   %d creates, %d moves, %d removes\n",
				result.HostCreates, result.HostMoves, result.HostRemoves)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "fast", "benchmark profile (fast, standard, stress)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "shuffle seed")
	cmd.Flags().StringVar(&jsonOut, "json", "", "write results to a JSON file")
	return cmd
}

// runDiffBench mounts a keyed list and patches it through shuffled
// permutations, timing both phases.
func runDiffBench(p profile, seed int64) diffResult {
	rng := rand.New(rand.NewSource(seed))
	adapter := memdom.New()
	r := renderer.New(adapter)
	container := adapter.NewContainer()

	keys := make([]string, p.ListSize)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	build := func(order []string) *vdom.VNode {
		items := make([]any, len(order))
		for i, k := range order {
			items[i] = vdom.Li(vdom.Key(k), k)
		}
		return vdom.Ul(items...)
	}

	mountStart := time.Now()
	r.Render(build(keys), container)
	mountDuration := time.Since(mountStart)

	adapter.ResetCalls()
	shuffled := make([]string, len(keys))
	copy(shuffled, keys)

	patchStart := time.Now()
	for i := 0; i < p.Iterations; i++ {
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		r.Render(build(shuffled), container)
	}
	patchDuration := time.Since(patchStart)

	result := diffResult{
		Profile:       p.Name,
		ListSize:      p.ListSize,
		Iterations:    p.Iterations,
		MountDuration: mountDuration,
		PatchDuration: patchDuration,
		PatchPerOp:    patchDuration / time.Duration(p.Iterations),
	}
	for _, call := range adapter.Calls() {
		switch call.Op {
		case "insert":
			result.HostMoves++
		case "createElement":
			result.HostCreates++
		case "remove":
			result.HostRemoves++
		}
	}
	return result
}
