// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/rewrite"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("count", 1000, "Number of expressions to generate")
	rootCmd.Flags().Uint("depth", 4, "Maximum nesting depth of generated expressions")
	rootCmd.Flags().Int64("seed", 0, "Seed for the random generator")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log every generated expression")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "symgen",
	Short: "Random expression generator and self-check utility for go-symbolic.",
	Run: func(cmd *cobra.Command, args []string) {
		var cfg SymGenConfig
		//
		cfg.count = getUint(cmd, "count")
		cfg.depth = getUint(cmd, "depth")
		cfg.seed = getInt64(cmd, "seed")
		cfg.verbose = getFlag(cmd, "verbose")
		//
		if cfg.verbose {
			log.SetLevel(log.DebugLevel)
		}
		// Run checks
		failures := checkRandomExpressions(cfg)
		//
		if failures != 0 {
			log.Errorf("%d / %d expressions failed self-checks", failures, cfg.count)
			os.Exit(2)
		}
		//
		log.Infof("%d expressions passed self-checks", cfg.count)
		os.Exit(0)
	},
}

// SymGenConfig encapsulates configuration related to expression generation.
type SymGenConfig struct {
	count   uint
	depth   uint
	seed    int64
	verbose bool
}

// checkRandomExpressions generates cfg.count random expressions and runs every
// invariant check against each, returning the number of failing expressions.
func checkRandomExpressions(cfg SymGenConfig) uint {
	var failures uint
	//
	rnd := rand.New(rand.NewSource(cfg.seed))
	simplifier := rewrite.NewSimplifier(rewrite.StdRules())
	//
	for i := uint(0); i < cfg.count; i++ {
		e := randomExpr(rnd, cfg.depth)
		log.Debugf("generated %s", e.String())
		//
		if err := checkExpr(simplifier, e); err != nil {
			log.Errorf("%s: %v", e.String(), err)

			failures++
		}
	}
	//
	return failures
}

// checkExpr applies every invariant self-check to a given expression,
// returning the first violation found (if any).
func checkExpr(simplifier *rewrite.Simplifier, e *expr.Expr) error {
	if err := checkRebuild(e); err != nil {
		return err
	}
	//
	if err := checkHashEquality(e); err != nil {
		return err
	}
	//
	return checkSimplify(simplifier, e)
}

// checkRebuild checks that rebuilding a canonical expression from its own
// operands yields the identical interned node.
func checkRebuild(e *expr.Expr) error {
	if e.Kind().IsAtom() {
		return nil
	}
	//
	rebuilt := expr.Rebuild(e, e.Args())
	//
	if rebuilt != e {
		return fmt.Errorf("rebuild not idempotent (got %s)", rebuilt.String())
	}
	// Check all subtrees likewise
	for _, arg := range e.Args() {
		if err := checkRebuild(arg); err != nil {
			return err
		}
	}
	//
	return nil
}

// checkHashEquality checks hash / equality consistency against a structural
// copy built bottom-up from fresh atoms.
func checkHashEquality(e *expr.Expr) error {
	copied := deepCopy(e)
	//
	if !expr.Equal(e, copied) {
		return fmt.Errorf("structural copy not equal (got %s)", copied.String())
	} else if e.Hash() != copied.Hash() {
		return fmt.Errorf("equal expressions with differing hashes")
	}
	//
	return nil
}

// checkSimplify checks that simplification is idempotent: simplifying a
// stable result a second time must yield the same node.
func checkSimplify(simplifier *rewrite.Simplifier, e *expr.Expr) error {
	out, status := simplifier.Simplify(e)
	//
	if status != rewrite.Stable {
		// Budget exhaustion is best-effort termination, not a failure.
		return nil
	}
	//
	again, _ := simplifier.Simplify(out)
	//
	if again != out {
		return fmt.Errorf("simplify not idempotent (%s vs %s)", out.String(), again.String())
	}
	//
	return nil
}

// deepCopy rebuilds a given expression bottom-up, going via the public
// constructors for every node.
func deepCopy(e *expr.Expr) *expr.Expr {
	switch e.Kind() {
	case expr.Integer, expr.Rational:
		return expr.NewRationalFromBig(e.Rat())
	case expr.Symbol:
		return expr.NewSymbolWith(e.Name(), e.Properties())
	case expr.Wild:
		return expr.NewWild(e.Name())
	case expr.WildSeq:
		return expr.NewWildSeq(e.Name())
	default:
		nargs := make([]*expr.Expr, e.Arity())
		//
		for i, arg := range e.Args() {
			nargs[i] = deepCopy(arg)
		}
		//
		return expr.Rebuild(e, nargs)
	}
}

var symbolPool = []string{"x", "y", "z", "u", "v", "w"}

var functionPool = []string{"sin", "cos", "exp", "log", "abs"}

// randomExpr generates a random expression of (at most) a given depth.
func randomExpr(rnd *rand.Rand, depth uint) *expr.Expr {
	if depth == 0 {
		return randomAtom(rnd)
	}
	//
	switch rnd.Intn(5) {
	case 0:
		return randomAtom(rnd)
	case 1:
		return expr.Sum(randomOperands(rnd, depth-1)...)
	case 2:
		return expr.Product(randomOperands(rnd, depth-1)...)
	case 3:
		// Keep exponents small integers so folding stays cheap.
		exp := expr.NewInteger(int64(rnd.Intn(5) - 2))
		return expr.Power(randomExpr(rnd, depth-1), exp)
	default:
		name := functionPool[rnd.Intn(len(functionPool))]
		//
		fn, err := expr.Function(name, randomExpr(rnd, depth-1))
		//
		if err != nil {
			panic(err)
		}
		//
		return fn
	}
}

// randomAtom generates a random leaf expression.
func randomAtom(rnd *rand.Rand) *expr.Expr {
	switch rnd.Intn(3) {
	case 0:
		return expr.NewInteger(int64(rnd.Intn(21) - 10))
	case 1:
		num, err := expr.NewRational(int64(rnd.Intn(19)-9), int64(rnd.Intn(9)+1))
		//
		if err != nil {
			panic(err)
		}
		//
		return num
	default:
		return expr.NewSymbol(symbolPool[rnd.Intn(len(symbolPool))])
	}
}

// randomOperands generates between two and four random operands.
func randomOperands(rnd *rand.Rand, depth uint) []*expr.Expr {
	operands := make([]*expr.Expr, 2+rnd.Intn(3))
	//
	for i := range operands {
		operands[i] = randomExpr(rnd, depth)
	}
	//
	return operands
}

// getUint extracts an expected uint flag, or panics.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}

	return r
}

// getInt64 extracts an expected int64 flag, or panics.
func getInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}

	return r
}

// getFlag extracts an expected boolean flag, or panics.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}

	return r
}
