// Command xssr is the orchestrator's CLI surface (§6, §4.9): load one or
// more text files, pad them with sentinels, and run the selected
// construction variant over each.
//
// Grounded on the teacher's own cmd/main.go (github.com/gaissmai/bart): a
// small synchronous setup-then-report binary using stdlib log for output
// and no third-party CLI framework, the same ambient choice this binary
// makes for flag parsing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-xss/nss"
)

// fileList is a repeatable flag.Value, the idiomatic way to accept
// --file more than once with the standard library flag package.
type fileList []string

func (f *fileList) String() string {
	if f == nil {
		return ""
	}
	return fmt.Sprint([]string(*f))
}

func (f *fileList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("xssr: ")

	var files fileList
	flag.Var(&files, "file", "input text file (repeatable)")
	length := flag.Int("length", 0, "cap on bytes read per file, 0 = unbounded")
	delta := flag.Uint64("delta", 4, "DeltaLCPStack quantization parameter: 0,1,2,4,8,16,32,64")
	mode := flag.String("mode", "bp", "construction variant: bp, arrays, oracle")
	pssOnly := flag.Bool("pss-only", false, "arrays mode: write only PSS")
	nssOnly := flag.Bool("nss-only", false, "arrays mode: write only NSS")
	useRK := flag.Bool("rk", false, "use the in-place Rabin-Karp LCE index instead of the naive scan")
	runs := flag.Int("runs", 1, "repeat each construction this many times (accepted for CLI compatibility with benchmark scripts; no timing harness is implemented)")
	flag.Parse()

	if len(files) == 0 {
		log.Println("at least one --file is required")
		os.Exit(1)
	}

	algorithm, err := parseAlgorithm(*mode)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	if *pssOnly && *nssOnly {
		log.Println("--pss-only and --nss-only are mutually exclusive")
		os.Exit(1)
	}

	arrayMode := nss.ModeBoth
	switch {
	case *pssOnly:
		arrayMode = nss.ModePSSOnly
	case *nssOnly:
		arrayMode = nss.ModeNSSOnly
	}

	cfg := nss.Config{
		Algorithm: algorithm,
		Mode:      arrayMode,
		UseRK:     *useRK,
		Delta:     *delta,
	}

	for _, path := range files {
		if err := run(path, *length, *runs, cfg); err != nil {
			log.Println(err)
			os.Exit(1)
		}
	}
}

func run(path string, lengthCap, runs int, cfg nss.Config) error {
	text, err := nss.Load(path, lengthCap)
	if err != nil {
		return err
	}

	if runs < 1 {
		runs = 1
	}

	var result nss.Result
	for r := 0; r < runs; r++ {
		result, err = nss.Build(text, cfg)
		if err != nil {
			return fmt.Errorf("building %s: %w", path, err)
		}
	}

	report(path, len(text), result)
	return nil
}

func report(path string, n int, result nss.Result) {
	switch {
	case result.BP != nil:
		log.Printf("%s: n=%d bp_bits=%d", path, n, result.BP.Len())
	case result.PSS != nil && result.NSS != nil:
		log.Printf("%s: n=%d pss[0:min(n,8)]=%v nss[0:min(n,8)]=%v", path, n, head(result.PSS), head(result.NSS))
	case result.PSS != nil:
		log.Printf("%s: n=%d pss[0:min(n,8)]=%v", path, n, head(result.PSS))
	case result.NSS != nil:
		log.Printf("%s: n=%d nss[0:min(n,8)]=%v", path, n, head(result.NSS))
	}
}

func head(xs []uint64) []uint64 {
	if len(xs) > 8 {
		return xs[:8]
	}
	return xs
}

func parseAlgorithm(mode string) (nss.Algorithm, error) {
	switch mode {
	case "bp":
		return nss.AlgorithmBP, nil
	case "arrays":
		return nss.AlgorithmArrays, nil
	case "oracle":
		return nss.AlgorithmOracle, nil
	default:
		return 0, fmt.Errorf("unknown --mode %q (want bp, arrays, or oracle)", mode)
	}
}
