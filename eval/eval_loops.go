/*
File    : interp/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/interp/parser"

// evalWhile implements §4.5's While rule: re-evaluate the condition
// before each iteration, running the body while it is truthy. Type
// enforcement matches If.
func (ev *Evaluator) evalWhile(s *parser.WhileStatement) error {
	for {
		cond, err := ev.evalCondition(s.Cond)
		if err != nil {
			return err
		}
		if !cond {
			return nil
		}
		if err := ev.evalStatement(s.Body); err != nil {
			return err
		}
	}
}
