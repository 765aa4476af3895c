// Package scaffold creates question folders. It powers the root "dsa"
// command: given a topic number and a question name it creates
// <topic-folder>/<Question-Name>/ under the workspace root and renders
// solution.md from the workspace's solution template, replacing every
// [Question Title] placeholder with the question name.
package scaffold
