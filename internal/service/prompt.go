package service

import "fmt"

const (
	// Generation runs hotter for variety; evaluation runs cool since it is a
	// judgment task.
	questionSetTemperature    = 0.8
	singleQuestionTemperature = 0.8
	evaluationTemperature     = 0.3
)

// defaultDocument is the built-in snippet used by POST /generate-question.
const defaultDocument = `
    The Python programming language was created by Guido van Rossum and first released in 1991.
    `

// buildQuestionSetPrompt embeds the fetched document verbatim and pins the
// exact output layout. The LLM's reply is passed through unvalidated, so the
// literal section headers here are the only format contract.
func buildQuestionSetPrompt(documentText string) string {
	return fmt.Sprintf(`
Read the following document and generate exactly 5 objective questions with answers followed by 5 subjective questions with answers.

Format exactly:

Objective Questions:
1. Question ...
Answer: ...
2. Question ...
Answer: ...
3. Question ...
Answer: ...
4. Question ...
Answer: ...
5. Question ...
Answer: ...

Subjective Questions:
1. Question ...
Answer: ...
2. Question ...
Answer: ...
3. Question ...
Answer: ...
4. Question ...
Answer: ...
5. Question ...
Answer: ...

Document:
%s
`, documentText)
}

func buildSingleQuestionPrompt(documentText string) string {
	return fmt.Sprintf(`Based on the following document, generate ONE specific question that tests understanding of the content.
The question should be clear, specific, and answerable from the document.
Only return the question itself, nothing else.

Document:
%s

Question:`, documentText)
}

// buildEvaluationPrompt asks for a lenient comparison and demands the
// two-line VERDICT/JUSTIFICATION reply that parseEvaluation expects.
func buildEvaluationPrompt(referenceText, userAnswer string) string {
	return fmt.Sprintf(`You are evaluating a student's answer against a reference text.

Reference:
%s

Student's Answer: %s

Decide whether the student's answer is correct with respect to the reference.
Be lenient: ignore differences in case and punctuation, accept synonyms and paraphrases, and tolerate changes in word order as well as minor grammar or spelling mistakes.

Respond in this exact format:

VERDICT: [CORRECT or INCORRECT]
JUSTIFICATION: [Explain why the answer is correct or incorrect. If incorrect, provide the correct answer and explain what was wrong with the student's response. If correct, explain what made it a good answer.]
`, referenceText, userAnswer)
}
