// Package corpus holds the built-in course catalog used by the demo.
package corpus

import "github.com/poiesic/coursematch/core"

var courses = []core.Course{
	{
		Code: "CSI-160", Name: "Introduction to Programming", Credits: 3,
		Semester: core.SemesterFall, Category: core.CategoryCSCore,
		Description: "Fundamentals of programming using Python. Variables, control structures, functions, and basic data types. First course for computer science majors with no prior coding experience.",
	},
	{
		Code: "CSI-220", Name: "Object-Oriented Programming", Credits: 3,
		Semester: core.SemesterSpring, Prereqs: []string{"CSI-160"}, Category: core.CategoryCSCore,
		Description: "Object-oriented design and programming with Java. Classes, objects, inheritance, polymorphism, interfaces, encapsulation, and software design patterns.",
	},
	{
		Code: "CSI-240", Name: "Data Structures & Algorithms", Credits: 3,
		Semester: core.SemesterFall, Prereqs: []string{"CSI-220"}, Category: core.CategoryCSCore,
		Description: "Fundamental data structures including arrays, linked lists, stacks, queues, trees, graphs, hash tables. Algorithm analysis, sorting, searching, and Big-O computational complexity.",
	},
	{
		Code: "CSI-260", Name: "Computer Architecture", Credits: 3,
		Semester: core.SemesterSpring, Prereqs: []string{"CSI-160"}, Category: core.CategoryCSCore,
		Description: "Computer organization and architecture. CPU design, memory hierarchy, cache, instruction sets, assembly language programming, and hardware-software interface.",
	},
	{
		Code: "CSI-280", Name: "Software Engineering", Credits: 3,
		Semester: core.SemesterFall, Prereqs: []string{"CSI-240"}, Category: core.CategoryCSCore,
		Description: "Software development life cycle, requirements engineering, system design, testing methodologies, project management, version control, agile scrum and waterfall methodologies.",
	},
	{
		Code: "CSI-300", Name: "Database Management Systems", Credits: 3,
		Semester: core.SemesterSpring, Prereqs: []string{"CSI-240"}, Category: core.CategoryCSCore,
		Description: "Relational database design, SQL queries, normalization, entity-relationship modeling, transactions, indexing, query optimization. Introduction to NoSQL and document databases.",
	},
	{
		Code: "CSI-340", Name: "Operating Systems", Credits: 3,
		Semester: core.SemesterFall, Prereqs: []string{"CSI-260", "CSI-240"}, Category: core.CategoryCSCore,
		Description: "Process management, threading, memory management, virtual memory, file systems, CPU scheduling, concurrency, deadlocks, synchronization in Linux and modern operating systems.",
	},
	{
		Code: "CSI-380", Name: "Web Application Development", Credits: 3,
		Semester: core.SemesterSpring, Prereqs: []string{"CSI-280"}, Category: core.CategoryCSCore,
		Description: "Full-stack web development with React, Node.js, and modern frameworks. Frontend HTML CSS JavaScript, REST APIs, backend servers, database integration, authentication, and cloud deployment.",
	},
	{
		Code: "CSI-400", Name: "Artificial Intelligence", Credits: 3,
		Semester: core.SemesterFall, Prereqs: []string{"CSI-240"}, Category: core.CategoryCSCore,
		Description: "Introduction to artificial intelligence including search algorithms, knowledge representation, machine learning fundamentals, neural networks, and natural language processing.",
	},
	{
		Code: "CSI-320", Name: "Machine Learning", Credits: 3,
		Semester: core.SemesterSpring, Prereqs: []string{"CSI-400"}, Category: core.CategoryCSElective,
		Description: "Supervised and unsupervised learning, regression, classification, decision trees, clustering, neural networks, deep learning, model evaluation, training, and prediction techniques.",
	},
	{
		Code: "CSI-350", Name: "Computer Networks", Credits: 3,
		Semester: core.SemesterFall, Prereqs: []string{"CSI-260"}, Category: core.CategoryCSElective,
		Description: "Network protocols, TCP/IP stack, OSI model, routing, switching, network security, firewalls, VPN, wireless networks, and distributed systems communication.",
	},
	{
		Code: "CSI-370", Name: "Mobile App Development", Credits: 3,
		Semester: core.SemesterFall, Prereqs: []string{"CSI-280"}, Category: core.CategoryCSElective,
		Description: "Mobile application development for iOS and Android using Swift and Kotlin. User interface design, gestures, sensors, data persistence, GPS location, and app store deployment.",
	},
	{
		Code: "CSI-420", Name: "Natural Language Processing", Credits: 3,
		Semester: core.SemesterFall, Prereqs: []string{"CSI-400"}, Category: core.CategoryCSElective,
		Description: "Text processing, tokenization, word embeddings, transformer models, sentiment analysis, text classification, language generation, chatbots, and large language models.",
	},
	{
		Code: "CSI-430", Name: "Cybersecurity Fundamentals", Credits: 3,
		Semester: core.SemesterFallSpring, Prereqs: []string{"CSI-260"}, Category: core.CategoryCSElective,
		Description: "Security principles, threat modeling, cryptography, encryption, access control, vulnerability assessment, penetration testing basics, and security best practices.",
	},
	{
		Code: "SEC-150", Name: "Security Fundamentals", Credits: 3,
		Semester: core.SemesterFall, Category: core.CategoryCybersecurityCore,
		Description: "Introduction to information security concepts. CIA triad confidentiality integrity availability, risk assessment, security policies, compliance frameworks, and security awareness training.",
	},
	{
		// SEC-210 is not in the catalog.
		Code: "SEC-250", Name: "Ethical Hacking", Credits: 3,
		Semester: core.SemesterFall, Prereqs: []string{"SEC-210"}, Category: core.CategoryCybersecurityCore,
		Description: "Penetration testing methodology, vulnerability scanning, network exploitation techniques, web application attacks, social engineering, password cracking, and responsible disclosure.",
	},
	{
		Code: "SEC-300", Name: "Digital Forensics", Credits: 3,
		Semester: core.SemesterSpring, Prereqs: []string{"SEC-250"}, Category: core.CategoryCybersecurityCore,
		Description: "Digital evidence collection and preservation, disk forensics, memory analysis, network forensics, malware analysis, chain of custody, and forensic reporting for legal proceedings.",
	},
	{
		Code: "SEC-400", Name: "Advanced Penetration Testing", Credits: 3,
		Semester: core.SemesterSpring, Prereqs: []string{"SEC-250"}, Category: core.CategoryCybersecurityCore,
		Description: "Advanced exploitation techniques, privilege escalation, lateral movement, Active Directory attacks, red team operations, custom exploit development, and evasion techniques.",
	},
	{
		Code: "MAT-210", Name: "Calculus I", Credits: 3,
		Semester: core.SemesterFallSpring, Category: core.CategoryMath,
		Description: "Limits, derivatives, integrals, fundamental theorem of calculus, applications of differentiation and integration to real-world mathematical problems.",
	},
	{
		Code: "MAT-230", Name: "Discrete Mathematics", Credits: 3,
		Semester: core.SemesterFall, Prereqs: []string{"MAT-210"}, Category: core.CategoryMath,
		Description: "Propositional logic, mathematical proofs, sets, relations, functions, counting combinatorics, graph theory, trees, and mathematical foundations for computer science algorithms.",
	},
	{
		// MAT-220 is not in the catalog.
		Code: "MAT-310", Name: "Linear Algebra", Credits: 3,
		Semester: core.SemesterSpring, Prereqs: []string{"MAT-220"}, Category: core.CategoryMath,
		Description: "Vectors, matrices, linear transformations, determinants, eigenvalues, eigenvectors, vector spaces, orthogonality, and applications to data science and machine learning.",
	},
	{
		Code: "MAT-330", Name: "Probability & Statistics", Credits: 3,
		Semester: core.SemesterFallSpring, Prereqs: []string{"MAT-210"}, Category: core.CategoryMath,
		Description: "Probability theory, random variables, probability distributions, Bayes theorem, hypothesis testing, confidence intervals, regression analysis, and statistical inference for data analysis.",
	},
}

// demoQueries are the student questions used by the default run.
var demoQueries = []string{
	"I want to learn how to hack into systems",
	"How do I build a website or web app?",
	"I'm interested in AI and machine learning",
	"I need math courses for data science",
	"How do computers store and organize information?",
}

// Courses returns a fresh copy of the built-in course records.
func Courses() []core.Course {
	out := make([]core.Course, len(courses))
	for i, c := range courses {
		c.Prereqs = append([]string(nil), c.Prereqs...)
		out[i] = c
	}
	return out
}

// Catalog builds the built-in catalog.
func Catalog() (*core.Catalog, error) {
	return core.NewCatalog(Courses()...)
}

// Queries returns a copy of the demo queries.
func Queries() []string {
	return append([]string(nil), demoQueries...)
}
