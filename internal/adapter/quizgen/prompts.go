package quizgen

import (
	"fmt"

	"topic-quiz/internal/domain"
)

func questionsPrompt(topic string, count int) string {
	return fmt.Sprintf(`Generate %[1]d multiple-choice quiz questions about "%[2]s".

For each question:
1. Provide a clear, concise question
2. Provide %[3]d possible answers (options)
3. Indicate which option is correct (as a number 0-%[4]d, where 0 is the first option)
4. Include a brief explanation of why the correct answer is right

Return the result as a valid JSON array with this structure:
[
  {
    "question": "Question text here?",
    "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
    "correctAnswer": 0,
    "explanation": "Explanation of the correct answer"
  }
]

Make sure the questions are diverse and cover different aspects of %[2]s.
Ensure the options are plausible and not obviously wrong.
Respond with the JSON array only.`, count, topic, domain.OptionsPerQuestion, domain.OptionsPerQuestion-1)
}

func recommendationPrompt(topic string, score, total, percentage int, tier domain.Tier) string {
	return fmt.Sprintf(`Based on a quiz about "%[1]s" where the user scored %[2]d/%[3]d (%[4]d%%),
which puts them at a "%[5]s" level, generate personalized learning recommendations.

Return the result as a valid JSON object with this structure:
{
  "skills": [
    "Skill recommendation 1",
    "Skill recommendation 2",
    "Skill recommendation 3",
    "Skill recommendation 4"
  ],
  "courses": [
    {"title": "Course title 1", "description": "Brief description of the course"},
    {"title": "Course title 2", "description": "Brief description of the course"},
    {"title": "Course title 3", "description": "Brief description of the course"}
  ],
  "tips": [
    "Learning tip 1",
    "Learning tip 2"
  ]
}

Make the recommendations specific to "%[1]s" and appropriate for a "%[5]s" level learner.
Respond with the JSON object only.`, topic, score, total, percentage, tier)
}
