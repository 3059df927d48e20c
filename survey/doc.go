// Package survey defines the fixed survey question set, answer validation,
// and the personality classifier.
//
// The survey has 8 questions in two domains:
//   - Personality (questions 1-5): integer answers 1-5, scored and
//     classified into Leader/Balanced/Thinker
//   - Interest (questions 6-8): preferred game, skill level 1-10, and
//     preferred role
//
// The question set is immutable after construction and shared read-only by
// all intake workers.
package survey
