// Command judgegen prints randomized judge input: trees, graphs, permutations,
// unique samples, point sets, or whole files described by YAML recipes.
//
//	judgegen tree -n 8 --header --seed 1
//	judgegen graph -n 6 -m 9 --weighted --wlo 1 --whi 100
//	judgegen run tests/01.yaml --check
//
// Every flag can also come from a JUDGEGEN_* environment variable
// (JUDGEGEN_SEED, JUDGEGEN_LOG_LEVEL, ...) or a --config file.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
