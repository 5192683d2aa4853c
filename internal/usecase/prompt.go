package usecase

// Fixed instructional template for the formalization prompt. The statement
// is substituted verbatim between the label and the trailer; the prompt
// builder performs no I/O and no escaping.
const (
	promptIntro = "As an expert in mathematical theorem formalization, your task is to convert the given informal mathematical statement into a formal theorem statement in Lean. Follow these guidelines:"

	promptGuidelines = `1. Use proper Lean syntax and notation.
2. Include appropriate type declarations for variables.
3. Use Unicode characters for mathematical symbols where applicable.
4. Structure the theorem statement logically, using implications (→) or biconditionals (↔) as needed.
5. If the statement involves multiple conditions or parts, use appropriate logical connectives (∧, ∨, ¬).
6. For statements about sets or types, use appropriate quantifiers (∀, ∃) and set notation.
7. If the statement involves specific mathematical concepts (e.g., primality, divisibility), use the corresponding functions or definitions.`

	promptStatementLabel = "Informal statement: "
	promptTrailer        = "Formal theorem:"
)

// BuildPrompt embeds the informal statement into the instructional template.
func BuildPrompt(statement string) string {
	return promptIntro + "\n\n" +
		promptGuidelines + "\n\n" +
		promptStatementLabel + statement + "\n\n" +
		promptTrailer
}
