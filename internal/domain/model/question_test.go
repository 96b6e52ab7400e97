package model

import "testing"

func TestPlatformFromLink(t *testing.T) {
	cases := []struct {
		link string
		want Platform
	}{
		{"https://leetcode.com/problems/two-sum/", PlatformLeetCode},
		{"https://LEETCODE.com/problems/3sum/", PlatformLeetCode},
		{"https://www.geeksforgeeks.org/problems/kadanes-algorithm-1587115620/1", PlatformGeeksForGeeks},
		{"https://www.interviewbit.com/problems/min-steps-in-infinite-grid/", PlatformInterviewBit},
		{"https://codeforces.com/problemset/problem/1/A", PlatformUnknown},
		{"", PlatformUnknown},
	}
	for _, c := range cases {
		if got := PlatformFromLink(c.link); got != c.want {
			t.Errorf("PlatformFromLink(%q) = %s, want %s", c.link, got, c.want)
		}
	}
}

func TestQuestionEnumValidity(t *testing.T) {
	if !TypeHomework.Valid() || !TypeClasswork.Valid() {
		t.Error("expected homework and classwork to be valid types")
	}
	if QuestionType("exam").Valid() {
		t.Error("expected unknown type to be invalid")
	}
	if !DifficultyEasy.Valid() || !DifficultyMedium.Valid() || !DifficultyHard.Valid() {
		t.Error("expected easy, medium, hard to be valid difficulties")
	}
	if QuestionDifficulty("extreme").Valid() {
		t.Error("expected unknown difficulty to be invalid")
	}
}
