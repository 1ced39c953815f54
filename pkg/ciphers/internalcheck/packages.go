package internalcheck

// CipherPackages lists the packages that must stay pure: no panics, no I/O,
// no randomness, no logging.
var CipherPackages = []string{
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers",
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/internal/alphabet",
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/caesar",
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/columnar",
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/monoalphabetic",
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/railfence",
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/vernam",
}

// ForbiddenImports maps an import path to the reason it is banned from
// CipherPackages.
var ForbiddenImports = map[string]string{
	"os":          "file and process I/O",
	"io":          "streaming I/O",
	"net":         "network I/O",
	"log":         "logging",
	"log/slog":    "logging",
	"math/rand":   "randomness",
	"crypto/rand": "randomness",
	"time":        "wall-clock dependence",
	"unsafe":      "unchecked memory access",
}

// LoggingPackages lists the packages that log and so must keep cipher keys
// out of their log calls.
var LoggingPackages = []string{
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/registry",
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/recipe",
	"github.com/SL-Lee/simple-ciphers-go/cmd/ciphers",
}

const loggingPkg = "github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/logging"
