package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/propkit/propkit/debug"
	"github.com/propkit/propkit/gen"
	"github.com/propkit/propkit/logic"
)

var commands = []string{
	"help", "debugging", "is-tautology", "is-contradiction", "is-satisfiable",
	"to-cnf", "to-dnf", "add-rule", "get-rules-from", "list-rules",
	"clear-rules", "query", "make-random", "quit",
}

var commandHelp = map[string]string{
	"help": "Shows the list of valid commands, or info about a command, if called with the command's name",
	"debugging": "Call 'debugging on' or 'debugging off' to turn debug messages on or off.\n" +
		"    These messages describe the rewrite steps the program goes through",
	"is-tautology":     "Call 'is-tautology some-formula' to check whether that formula is a tautology",
	"is-contradiction": "Call 'is-contradiction some-formula' to check whether that formula is a contradiction",
	"is-satisfiable":   "Call 'is-satisfiable some-formula' to check whether that formula is satisfiable",
	"to-cnf":           "Call 'to-cnf some-formula' to turn it into its CNF form and see the result",
	"to-dnf":           "Call 'to-dnf some-formula' to turn it into its DNF form and see the result",
	"add-rule": "Call 'add-rule some-rule' to add a rule to the program's set of known rules.\n" +
		"    Rules are used for queries, which ask whether a literal is definitely true.\n" +
		"    Enter rules in this form: 'A', 'A->B', 'A,B->C', etc.",
	"get-rules-from": "Call 'get-rules-from some-formula' to extract definite rules from the given formula",
	"list-rules":     "Call 'list-rules' to see the program's known rules",
	"clear-rules":    "Call 'clear-rules' to clear the program's known rules",
	"query": "Call 'query some-literal' to ask whether that literal is definitely true, given the known rules.\n" +
		"    Only a single uppercase letter is a valid input",
	"make-random": "Call 'make-random' to generate a random formula",
	"quit":        "Exits the program",
}

var (
	resultColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
)

func say(format string, args ...interface{}) {
	fmt.Printf("    "+format+"\n", args...)
}

func sayResult(format string, args ...interface{}) {
	resultColor.Printf("    "+format+"\n", args...)
}

func sayError(format string, args ...interface{}) {
	errorColor.Printf("    "+format+"\n", args...)
}

func printCommands() {
	say("Here is a list of available commands:")
	say(strings.Join(commands, ", "))
}

func banner() {
	say("Welcome to propkit, a toolkit for working with propositional formulas")
	fmt.Println()
	say("Use the following notation to write formulas:")
	say("Single uppercase letters for literals, for example A, B")
	say("'a'  - conjunction, for example AaB, AaBaC")
	say("'v'  - disjunction, for example Av(BaC)")
	say("'!'  - negation, for example !A, !(AvB)")
	say("'->' - implication, for example A->B, A->(BvC)")
	fmt.Println()
	printCommands()
	fmt.Println()
}

// parseArg parses the formula argument of a command, reporting problems to
// the user. A nil result means the caller should bail out.
func parseArg(arg string) logic.Formula {
	if arg == "" {
		sayError("You have to specify a formula")
		return nil
	}
	f, err := logic.Parse(arg)
	if err != nil {
		sayError("%q is not a valid formula: %v", arg, err)
		return nil
	}
	return f
}

func main() {
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "seed for the random formula generator (0 picks a time-based one)")
	flag.Parse()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	rb := logic.NewRuleBase()
	banner()
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("  > ")
		if !sc.Scan() {
			break
		}
		words := strings.Fields(sc.Text())
		if len(words) == 0 {
			continue
		}
		cmd := words[0]
		arg := ""
		if len(words) > 1 {
			arg = words[1]
		}
		switch cmd {
		case "help":
			if arg == "" {
				say("propkit is a toolkit for working with propositional formulas")
				printCommands()
				fmt.Println()
				say("If you want to know what a command does, enter 'help command-name', for example 'help to-cnf'")
			} else if h, ok := commandHelp[arg]; ok {
				say(h)
			} else {
				sayError("%s is not a valid command name", arg)
			}
		case "debugging":
			switch arg {
			case "on":
				debug.SetEnabled(true)
				say("Debug messages turned on")
			case "off":
				debug.SetEnabled(false)
				say("Debug messages turned off")
			default:
				sayError("You have to call either 'debugging on' or 'debugging off'")
			}
		case "is-tautology":
			if f := parseArg(arg); f != nil {
				verdict(arg, "a tautology", logic.IsTautology(f))
			}
		case "is-contradiction":
			if f := parseArg(arg); f != nil {
				verdict(arg, "a contradiction", logic.IsContradiction(f))
			}
		case "is-satisfiable":
			if f := parseArg(arg); f != nil {
				verdict(arg, "satisfiable", logic.IsSatisfiable(f))
			}
		case "to-cnf":
			if f := parseArg(arg); f != nil {
				sayResult("%s", logic.ToCNF(f))
			}
		case "to-dnf":
			if f := parseArg(arg); f != nil {
				sayResult("%s", logic.ToDNF(f))
			}
		case "add-rule":
			if arg == "" {
				sayError("You have to specify a rule")
			} else if err := rb.AddRule(arg); err != nil {
				sayError("%v", err)
				say("Enter rules in this form: 'A', 'A->B', 'A,B->C', etc.")
			} else {
				sayResult("Rule added")
			}
		case "get-rules-from":
			if f := parseArg(arg); f != nil {
				rb.Extract(f)
				sayResult("The formula has been processed for definite rules")
			}
		case "list-rules":
			for _, r := range rb.Rules() {
				say("%s", r)
			}
		case "clear-rules":
			rb.Clear()
			sayResult("The program's rules have been cleared")
		case "query":
			if arg == "" {
				sayError("You have to specify a literal")
				break
			}
			res, err := rb.Query(arg)
			if err != nil {
				sayError("%v", err)
				break
			}
			if res {
				sayResult("%s is definitely true", arg)
			} else {
				sayResult("%s is not definitely true", arg)
			}
		case "make-random":
			sayResult("%s", gen.Formula(rnd, 15, 3))
		case "quit":
			fmt.Println()
			say("Thank you for trying propkit.")
			return
		default:
			sayError("Command not recognised")
			printCommands()
		}
		fmt.Println()
	}
}

func verdict(arg, property string, holds bool) {
	if holds {
		sayResult("%s is %s", arg, property)
	} else {
		sayResult("%s is not %s", arg, property)
	}
}
