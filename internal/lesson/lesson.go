package lesson

type Section int

const (
	Intro Section = iota
	Structure
	Build
	Quiz
)

var Sections = []Section{Intro, Structure, Build, Quiz}

var sectionTitles = map[Section]string{
	Intro:     "Introduction",
	Structure: "Atomic Structure",
	Build:     "Build an Atom",
	Quiz:      "Quiz",
}

var sectionHeadings = map[Section]string{
	Intro:     "Introduction to Atomic Structure",
	Structure: "Understanding Atomic Structure",
	Build:     "Build Your Own Atom",
	Quiz:      "Test Your Knowledge",
}

var sectionLeads = map[Section]string{
	Intro:     "Atoms are the basic building blocks of matter. Everything around us is made up of atoms.",
	Structure: "Atoms consist of a nucleus surrounded by electrons. The nucleus contains protons and neutrons.",
	Build:     "Use the controls below to create different atoms by adding protons, neutrons, and electrons.",
	Quiz:      "Answer these questions to check your understanding of atomic structure.",
}

func (s Section) Title() string   { return sectionTitles[s] }
func (s Section) Heading() string { return sectionHeadings[s] }
func (s Section) Lead() string    { return sectionLeads[s] }
func (s Section) String() string  { return s.Title() }

func (s Section) Next() Section {
	return Sections[(int(s)+1)%len(Sections)]
}

func (s Section) Prev() Section {
	return Sections[(int(s)+len(Sections)-1)%len(Sections)]
}

// ParseSection maps a 1-based menu number to a section.
func ParseSection(n int) (Section, bool) {
	if n < 1 || n > len(Sections) {
		return Intro, false
	}
	return Sections[n-1], true
}

const (
	Title    = "Atomic Structure Explorer"
	Subtitle = "An interactive learning module for Class 10 students"
	Footer   = "Atomic Structure Explorer - Created for Educational Purposes"
)

type Fact struct {
	Heading string
	Body    string
}

var DidYouKnow = Fact{
	Heading: "Did you know?",
	Body:    "Atoms are so small that a single drop of water contains about 10^21 atoms! That's 1 followed by 21 zeros.",
}

type Component struct {
	Name        string
	Description string
}

var Components = []Component{
	{"Protons", "Positively charged particles in the nucleus"},
	{"Neutrons", "Neutral particles in the nucleus"},
	{"Electrons", "Negatively charged particles orbiting the nucleus"},
}

const IntroOutro = "Select different sections from the menu above to explore atomic structure in more detail!"
