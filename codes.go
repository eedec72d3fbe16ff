package zwutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrReservedCode = errors.New("zwutil: OK is reserved and cannot be renamed")
	ErrEmptyName    = errors.New("zwutil: code name is empty")
)

// CodeInfo describes a registered code.
type CodeInfo struct {
	Code        Code   `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// codeFile is the on-disk layout read by LoadCodes:
//
//	codes:
//	  - code: 0x3001
//	    name: ESP_ERR_WIFI_NOT_INIT
//	    description: WiFi driver was not installed
type codeFile struct {
	Codes []CodeInfo `yaml:"codes"`
}

// CodeRegistry maps codes to display names. It is safe for concurrent use.
type CodeRegistry struct {
	mu    sync.RWMutex
	codes map[Code]CodeInfo
}

// NewCodeRegistry returns a registry seeded with the well-known codes.
func NewCodeRegistry() *CodeRegistry {
	r := &CodeRegistry{codes: make(map[Code]CodeInfo, len(builtinCodes))}
	for _, info := range builtinCodes {
		r.codes[info.Code] = info
	}
	return r
}

var builtinCodes = []CodeInfo{
	{Code: OK, Name: "ESP_OK", Description: "success"},
	{Code: CodeFail, Name: "ESP_FAIL", Description: "generic failure"},
	{Code: CodeNoMem, Name: "ESP_ERR_NO_MEM", Description: "out of memory"},
	{Code: CodeInvalidArg, Name: "ESP_ERR_INVALID_ARG", Description: "invalid argument"},
	{Code: CodeInvalidState, Name: "ESP_ERR_INVALID_STATE", Description: "invalid state"},
	{Code: CodeInvalidSize, Name: "ESP_ERR_INVALID_SIZE", Description: "invalid size"},
	{Code: CodeNotFound, Name: "ESP_ERR_NOT_FOUND", Description: "requested resource not found"},
	{Code: CodeNotSupported, Name: "ESP_ERR_NOT_SUPPORTED", Description: "operation or feature not supported"},
	{Code: CodeTimeout, Name: "ESP_ERR_TIMEOUT", Description: "operation timed out"},
}

// Register adds or replaces the entry for info.Code.
func (r *CodeRegistry) Register(info CodeInfo) error {
	if info.Code == OK {
		return ErrReservedCode
	}
	if info.Name == "" {
		return fmt.Errorf("code 0x%x: %w", int32(info.Code), ErrEmptyName)
	}

	r.mu.Lock()
	r.codes[info.Code] = info
	r.mu.Unlock()
	return nil
}

// Lookup returns the entry registered for c.
func (r *CodeRegistry) Lookup(c Code) (CodeInfo, bool) {
	r.mu.RLock()
	info, ok := r.codes[c]
	r.mu.RUnlock()
	return info, ok
}

// Name returns the registered name of c, or its hex form when unknown.
func (r *CodeRegistry) Name(c Code) string {
	if info, ok := r.Lookup(c); ok {
		return info.Name
	}
	return fmt.Sprintf("%#x", int32(c))
}

// List returns all entries ordered by code.
func (r *CodeRegistry) List() []CodeInfo {
	r.mu.RLock()
	out := make([]CodeInfo, 0, len(r.codes))
	for _, info := range r.codes {
		out = append(out, info)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Load reads a YAML code list and registers every entry. Entries are
// validated before any of them is applied.
func (r *CodeRegistry) Load(rd io.Reader) error {
	var file codeFile
	if err := yaml.NewDecoder(rd).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("yaml decode: %w", err)
	}

	for i, info := range file.Codes {
		if info.Code == OK {
			return fmt.Errorf("entry %d: %w", i, ErrReservedCode)
		}
		if info.Name == "" {
			return fmt.Errorf("entry %d: code 0x%x: %w", i, int32(info.Code), ErrEmptyName)
		}
	}

	r.mu.Lock()
	for _, info := range file.Codes {
		r.codes[info.Code] = info
	}
	r.mu.Unlock()
	return nil
}

// LoadFile is Load on the named file.
func (r *CodeRegistry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := r.Load(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Marshal renders the registry in the format accepted by Load. OK is
// implicit and left out.
func (r *CodeRegistry) Marshal() ([]byte, error) {
	var file codeFile
	for _, info := range r.List() {
		if info.Code != OK {
			file.Codes = append(file.Codes, info)
		}
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// DefaultCodes is the registry used by Code.String.
var DefaultCodes = NewCodeRegistry()

// RegisterCode registers a name in DefaultCodes.
func RegisterCode(c Code, name, description string) error {
	return DefaultCodes.Register(CodeInfo{Code: c, Name: name, Description: description})
}

// LoadCodes loads YAML code definitions into DefaultCodes.
func LoadCodes(rd io.Reader) error {
	return DefaultCodes.Load(rd)
}

// LoadCodesFile loads a YAML code file into DefaultCodes.
func LoadCodesFile(path string) error {
	return DefaultCodes.LoadFile(path)
}

func (c Code) String() string {
	return DefaultCodes.Name(c)
}
