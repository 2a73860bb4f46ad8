package quiz

import (
	"errors"
	"testing"
)

func TestBank(t *testing.T) {
	b := Bank()
	if len(b) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(b))
	}
	for _, q := range b {
		if _, ok := q.Resolve(q.Answer); !ok {
			t.Errorf("answer %q not among options of %q", q.Answer, q.Prompt)
		}
	}
	b[0].Options[0] = "changed"
	if Bank()[0].Options[0] != "Proton" {
		t.Error("Bank should return copies")
	}
}

func TestGet(t *testing.T) {
	if _, err := Get(3); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("expected ErrNoQuestion, got %v", err)
	}
	q, err := Get(0)
	if err != nil || q.Answer != "Proton" {
		t.Errorf("unexpected first question %+v (%v)", q, err)
	}
}

func TestSession_Correct(t *testing.T) {
	q, _ := Get(0)
	s := NewSession(q)
	ok, err := s.Submit("proton")
	if err != nil || !ok {
		t.Fatalf("expected correct answer, got %v %v", ok, err)
	}
	if s.Feedback() != q.Correct {
		t.Errorf("unexpected feedback %q", s.Feedback())
	}
	if s.Mark("Proton") != Correct || s.Mark("Neutron") != Unmarked {
		t.Error("unexpected marks")
	}
}

func TestSession_Incorrect(t *testing.T) {
	q, _ := Get(0)
	s := NewSession(q)
	if s.Mark("Proton") != Unmarked {
		t.Error("no marks before answering")
	}
	ok, err := s.Submit("3")
	if err != nil || ok {
		t.Fatalf("expected wrong answer, got %v %v", ok, err)
	}
	if s.Selected() != "Electron" {
		t.Errorf("expected Electron, got %s", s.Selected())
	}
	if s.Mark("Electron") != Incorrect || s.Mark("Proton") != Correct || s.Mark("Photon") != Unmarked {
		t.Error("unexpected marks")
	}
	if s.Feedback() != "Incorrect. The correct answer is Proton." {
		t.Errorf("unexpected feedback %q", s.Feedback())
	}
}

func TestSession_SingleSubmit(t *testing.T) {
	q, _ := Get(0)
	s := NewSession(q)
	if _, err := s.Submit("Neutron"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit("Proton"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("expected ErrAlreadyAnswered, got %v", err)
	}
	if s.Selected() != "Neutron" {
		t.Error("second submit must not change the answer")
	}
}

func TestSession_UnknownOption(t *testing.T) {
	q, _ := Get(0)
	s := NewSession(q)
	for _, in := range []string{"Quark", "0", "5", "1.5"} {
		if _, err := s.Submit(in); !errors.Is(err, ErrUnknownOption) {
			t.Errorf("Submit(%q): expected ErrUnknownOption, got %v", in, err)
		}
	}
	if s.Answered() {
		t.Error("rejected submissions must not answer the question")
	}
}
