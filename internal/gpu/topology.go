package gpu

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fxnlabs/kfd-isa/internal/isa"
)

var ErrNoSupportedGPU = errors.New("no supported GPU node in KFD topology")

// Node is one GPU agent from the KFD topology.
type Node struct {
	ID               int
	GFXTargetVersion uint32
	Target           string           // e.g. "gfx90a"
	Arch             isa.Architecture // ArchUnknown if not in the catalog
}

// TargetName renders a gfx_target_version (major*10000 + minor*100 +
// stepping) as a gfx target id. The stepping is printed in hex.
func TargetName(version uint32) string {
	major := version / 10000
	minor := (version / 100) % 100
	step := version % 100
	return fmt.Sprintf("gfx%d%d%x", major, minor, step)
}

// ReadTopology returns the GPU nodes under root/nodes, ordered by id.
// CPU-only nodes report gfx_target_version 0 and are skipped.
func ReadTopology(root string) ([]Node, error) {
	entries, err := os.ReadDir(filepath.Join(root, "nodes"))
	if err != nil {
		return nil, fmt.Errorf("read KFD topology: %w", err)
	}

	var nodes []Node
	for _, entry := range entries {
		id, err := strconv.Atoi(entry.Name())
		if err != nil || !entry.IsDir() {
			continue
		}
		props, err := readProperties(filepath.Join(root, "nodes", entry.Name(), "properties"))
		if err != nil {
			return nil, err
		}
		version, ok := props["gfx_target_version"]
		if !ok || version == 0 {
			continue
		}
		node := Node{
			ID:               id,
			GFXTargetVersion: uint32(version),
			Target:           TargetName(uint32(version)),
		}
		if arch, err := isa.ParseArchitecture(node.Target); err == nil {
			node.Arch = arch
		}
		nodes = append(nodes, node)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes, nil
}

// DetectArchitecture returns the architecture of the first GPU node the
// catalog supports.
func DetectArchitecture(root string) (isa.Architecture, error) {
	nodes, err := ReadTopology(root)
	if err != nil {
		return isa.ArchUnknown, err
	}
	for _, node := range nodes {
		if node.Arch.Valid() {
			return node.Arch, nil
		}
	}
	return isa.ArchUnknown, ErrNoSupportedGPU
}

func readProperties(path string) (map[string]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	props := make(map[string]uint64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		props[fields[0]] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return props, nil
}
