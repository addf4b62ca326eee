package main

import (
	"bytes"
	"fmt"
)

// Generate lowers a program node to RV64 assembly text. Each statement
// evaluates into a0; the last statement's a0 is main's return value and
// becomes the process exit status.
func Generate(prog *ASTNode) string {
	if prog.Kind != NodeProgram {
		panic("Generate: not a program node: " + string(prog.Kind))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "  .globl main\n")
	fmt.Fprintf(&buf, "main:\n")

	for _, stmt := range prog.Children {
		genExpr(&buf, stmt)
	}

	fmt.Fprintf(&buf, "  ret\n")
	return buf.String()
}

// genExpr emits instructions leaving the expression's value in a0.
// Binary operands go left first, then the left value is spilled to the
// stack while the right side evaluates, so net stack depth is zero
// across every expression.
func genExpr(buf *bytes.Buffer, node *ASTNode) {
	switch node.Kind {
	case NodeInteger:
		fmt.Fprintf(buf, "  li a0, %d\n", node.Integer)

	case NodeUnary:
		if node.Op != "-" {
			panic("Unsupported unary operator: " + node.Op)
		}
		genExpr(buf, node.Children[0])
		fmt.Fprintf(buf, "  neg a0, a0\n")

	case NodeBinary:
		genExpr(buf, node.Children[0])
		push(buf)
		genExpr(buf, node.Children[1])
		pop(buf, "a1")

		// a1 holds the left operand, a0 the right.
		switch node.Op {
		case "+":
			fmt.Fprintf(buf, "  add a0, a1, a0\n")
		case "-":
			fmt.Fprintf(buf, "  sub a0, a1, a0\n")
		case "*":
			fmt.Fprintf(buf, "  mul a0, a1, a0\n")
		case "/":
			fmt.Fprintf(buf, "  div a0, a1, a0\n")
		case "==":
			fmt.Fprintf(buf, "  xor a0, a1, a0\n")
			fmt.Fprintf(buf, "  seqz a0, a0\n")
		case "!=":
			fmt.Fprintf(buf, "  xor a0, a1, a0\n")
			fmt.Fprintf(buf, "  snez a0, a0\n")
		case "<":
			fmt.Fprintf(buf, "  slt a0, a1, a0\n")
		case "<=":
			// a1 <= a0  is  !(a0 < a1)
			fmt.Fprintf(buf, "  slt a0, a0, a1\n")
			fmt.Fprintf(buf, "  xori a0, a0, 1\n")
		default:
			panic("Unsupported binary operator: " + node.Op)
		}

	default:
		panic("Unsupported node kind: " + string(node.Kind))
	}
}

func push(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  addi sp, sp, -8\n")
	fmt.Fprintf(buf, "  sd a0, 0(sp)\n")
}

func pop(buf *bytes.Buffer, reg string) {
	fmt.Fprintf(buf, "  ld %s, 0(sp)\n", reg)
	fmt.Fprintf(buf, "  addi sp, sp, 8\n")
}
