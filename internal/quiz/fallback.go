package quiz

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/exam-ace/backend/internal/models"
)

type bankKey struct {
	subject    string
	difficulty models.Difficulty
}

// fallbackBank is the curated question pool served when the LLM is
// unreachable or keeps producing unusable output. Keys are lowercase
// subject names. Read-only after init, so concurrent reads are safe.
var fallbackBank = map[bankKey][]models.QuizQuestion{
	{"computer science", models.DifficultyBeginner}: {
		{Question: "What does CPU stand for?", Options: []string{"Central Processing Unit", "Computer Personal Unit", "Central Program Utility", "Computer Processing Utility"}, CorrectIndex: 0, Explanation: "CPU stands for Central Processing Unit, the primary component that executes instructions."},
		{Question: "Which data structure uses FIFO (First In, First Out)?", Options: []string{"Stack", "Queue", "Tree", "Graph"}, CorrectIndex: 1, Explanation: "A Queue follows FIFO ordering — the first element added is the first removed."},
		{Question: "What is the binary representation of the decimal number 10?", Options: []string{"1010", "1100", "1001", "1110"}, CorrectIndex: 0, Explanation: "10 in binary is 1010 (8+2)."},
		{Question: "Which language is primarily used for web page styling?", Options: []string{"HTML", "JavaScript", "CSS", "Python"}, CorrectIndex: 2, Explanation: "CSS (Cascading Style Sheets) is the standard language for styling web pages."},
		{Question: "What does RAM stand for?", Options: []string{"Read Access Memory", "Random Access Memory", "Run Application Memory", "Rapid Access Module"}, CorrectIndex: 1, Explanation: "RAM stands for Random Access Memory, a type of volatile storage."},
		{Question: "Which of the following is an operating system?", Options: []string{"Python", "Linux", "HTML", "MySQL"}, CorrectIndex: 1, Explanation: "Linux is an open-source operating system kernel used in many distributions."},
		{Question: "What is the smallest unit of data in a computer?", Options: []string{"Byte", "Bit", "Kilobyte", "Nibble"}, CorrectIndex: 1, Explanation: "A bit (binary digit) is the smallest unit, representing a 0 or 1."},
		{Question: "Which symbol is used for single-line comments in Python?", Options: []string{"//", "#", "--", "/*"}, CorrectIndex: 1, Explanation: "Python uses the # symbol for single-line comments."},
	},
	{"computer science", models.DifficultyIntermediate}: {
		{Question: "What is the time complexity of binary search?", Options: []string{"O(n)", "O(log n)", "O(n²)", "O(1)"}, CorrectIndex: 1, Explanation: "Binary search halves the search space each step, giving O(log n) complexity."},
		{Question: "Which protocol is used for secure web communication?", Options: []string{"HTTP", "FTP", "HTTPS", "SMTP"}, CorrectIndex: 2, Explanation: "HTTPS uses TLS/SSL encryption on top of HTTP for secure communication."},
		{Question: "In OOP, what does encapsulation mean?", Options: []string{"Inheriting from a parent class", "Bundling data and methods that operate on that data", "Creating multiple instances", "Overriding parent methods"}, CorrectIndex: 1, Explanation: "Encapsulation is the bundling of data with the methods that act on it, restricting direct access."},
		{Question: "What is a foreign key in a relational database?", Options: []string{"A unique identifier for a row", "A key that references the primary key of another table", "An encrypted column", "The first column in a table"}, CorrectIndex: 1, Explanation: "A foreign key creates a link between two tables by referencing the primary key of another table."},
		{Question: "What does DNS stand for?", Options: []string{"Data Network System", "Domain Name System", "Digital Naming Service", "Distributed Node Structure"}, CorrectIndex: 1, Explanation: "DNS translates domain names (like google.com) into IP addresses."},
		{Question: "Which sorting algorithm has the best average-case time complexity?", Options: []string{"Bubble Sort", "Selection Sort", "Merge Sort", "Insertion Sort"}, CorrectIndex: 2, Explanation: "Merge Sort has O(n log n) average-case complexity, better than the O(n²) of bubble/selection/insertion sort."},
		{Question: "What is a deadlock in operating systems?", Options: []string{"A fast execution state", "When two or more processes are waiting indefinitely for each other", "A type of memory allocation", "A CPU scheduling algorithm"}, CorrectIndex: 1, Explanation: "Deadlock occurs when processes hold resources while waiting for others, creating a circular dependency."},
		{Question: "Which of these is a NoSQL database?", Options: []string{"PostgreSQL", "MySQL", "MongoDB", "SQLite"}, CorrectIndex: 2, Explanation: "MongoDB is a document-based NoSQL database that stores data in flexible JSON-like documents."},
	},
	{"computer science", models.DifficultyAdvanced}: {
		{Question: "What is the CAP theorem about?", Options: []string{"CPU, ALU, and Pipeline design", "Consistency, Availability, and Partition tolerance trade-offs", "Cache, Address, and Protocol optimization", "Computation, Algorithm, and Performance analysis"}, CorrectIndex: 1, Explanation: "CAP theorem states a distributed system can only guarantee two of: Consistency, Availability, Partition tolerance."},
		{Question: "Which consensus algorithm does Raft implement?", Options: []string{"Byzantine fault tolerance", "Leader-based log replication", "Proof of work", "Two-phase commit"}, CorrectIndex: 1, Explanation: "Raft is a leader-based consensus algorithm that replicates a log across a cluster of servers."},
		{Question: "What is the purpose of a Bloom filter?", Options: []string{"Sorting data efficiently", "Probabilistic set membership testing", "Compressing files", "Encrypting data"}, CorrectIndex: 1, Explanation: "A Bloom filter is a space-efficient probabilistic data structure that tests whether an element is a member of a set, with possible false positives but no false negatives."},
		{Question: "In lambda calculus, what is a beta reduction?", Options: []string{"Removing unused variables", "Applying a function to its argument", "Renaming bound variables", "Converting to normal form"}, CorrectIndex: 1, Explanation: "Beta reduction is the process of applying a lambda abstraction to an argument by substituting the bound variable."},
		{Question: "What does the ACID property 'Isolation' guarantee?", Options: []string{"Transactions are stored permanently", "Concurrent transactions don't interfere with each other", "All operations in a transaction succeed or none do", "Data remains valid after a transaction"}, CorrectIndex: 1, Explanation: "Isolation ensures concurrent transactions execute as if they were serial, preventing dirty reads and other anomalies."},
		{Question: "Which problem is NP-complete?", Options: []string{"Binary search", "Sorting an array", "Travelling Salesman Problem (decision version)", "Finding the maximum in a list"}, CorrectIndex: 2, Explanation: "The decision version of TSP ('Is there a tour shorter than k?') is NP-complete."},
		{Question: "What is the difference between a mutex and a semaphore?", Options: []string{"They are identical", "A mutex is binary; a semaphore can have a count > 1", "A semaphore is faster", "A mutex allows multiple threads"}, CorrectIndex: 1, Explanation: "A mutex is a binary lock (0 or 1), while a counting semaphore allows a specified number of concurrent accesses."},
		{Question: "What is tail call optimization?", Options: []string{"Caching function results", "Reusing the current stack frame for recursive calls in tail position", "Parallelizing function calls", "Inlining small functions"}, CorrectIndex: 1, Explanation: "TCO reuses the current stack frame when a function's last action is a recursive call, preventing stack overflow."},
	},
	{"mathematics", models.DifficultyBeginner}: {
		{Question: "What is the value of π (pi) rounded to two decimal places?", Options: []string{"3.14", "3.41", "2.71", "3.17"}, CorrectIndex: 0, Explanation: "Pi is approximately 3.14159..., which rounds to 3.14."},
		{Question: "What is 15% of 200?", Options: []string{"15", "25", "30", "35"}, CorrectIndex: 2, Explanation: "15% of 200 = 0.15 × 200 = 30."},
		{Question: "What is the square root of 144?", Options: []string{"14", "12", "11", "13"}, CorrectIndex: 1, Explanation: "12 × 12 = 144, so √144 = 12."},
		{Question: "In a right triangle, what is the longest side called?", Options: []string{"Adjacent", "Opposite", "Hypotenuse", "Base"}, CorrectIndex: 2, Explanation: "The hypotenuse is the side opposite the right angle and the longest side of a right triangle."},
		{Question: "What is the sum of angles in a triangle?", Options: []string{"90°", "180°", "270°", "360°"}, CorrectIndex: 1, Explanation: "The sum of interior angles of any triangle is always 180 degrees."},
		{Question: "What is 7 factorial (7!)?", Options: []string{"720", "5040", "40320", "3628800"}, CorrectIndex: 1, Explanation: "7! = 7×6×5×4×3×2×1 = 5040."},
		{Question: "What is the next prime number after 7?", Options: []string{"8", "9", "10", "11"}, CorrectIndex: 3, Explanation: "11 is the next prime after 7 (8, 9, and 10 are all composite)."},
	},
	{"mathematics", models.DifficultyIntermediate}: {
		{Question: "What is the derivative of x³?", Options: []string{"x²", "3x²", "3x", "x³/3"}, CorrectIndex: 1, Explanation: "Using the power rule, d/dx(x³) = 3x²."},
		{Question: "What is the integral of 2x dx?", Options: []string{"x² + C", "2x² + C", "x + C", "2x + C"}, CorrectIndex: 0, Explanation: "∫2x dx = 2·(x²/2) + C = x² + C."},
		{Question: "What is log₂(64)?", Options: []string{"4", "5", "6", "8"}, CorrectIndex: 2, Explanation: "2⁶ = 64, so log₂(64) = 6."},
		{Question: "What is the determinant of the matrix [[1,2],[3,4]]?", Options: []string{"-2", "2", "-1", "10"}, CorrectIndex: 0, Explanation: "det = (1×4) - (2×3) = 4 - 6 = -2."},
		{Question: "In how many ways can 5 people be arranged in a line?", Options: []string{"25", "60", "120", "720"}, CorrectIndex: 2, Explanation: "This is 5P5 = 5! = 120."},
		{Question: "What is the formula for the sum of an arithmetic series?", Options: []string{"n(n+1)/2", "n/2 × (first + last)", "a × rⁿ", "n² + 1"}, CorrectIndex: 1, Explanation: "Sum = n/2 × (a₁ + aₙ), where n is the number of terms."},
		{Question: "What is the quadratic formula?", Options: []string{"x = -b/2a", "x = (-b ± √(b²-4ac)) / 2a", "x = -c/b", "x = b² - 4ac"}, CorrectIndex: 1, Explanation: "The quadratic formula solves ax² + bx + c = 0 for x."},
	},
	{"mathematics", models.DifficultyAdvanced}: {
		{Question: "What is the Euler's identity?", Options: []string{"e^(iπ) = -1", "e^(iπ) = 1", "e^(iπ) = 0", "e^(iπ) = i"}, CorrectIndex: 0, Explanation: "Euler's identity states e^(iπ) + 1 = 0, or equivalently e^(iπ) = -1."},
		{Question: "What is the rank of a 3×3 identity matrix?", Options: []string{"1", "2", "3", "0"}, CorrectIndex: 2, Explanation: "The identity matrix has 3 linearly independent rows/columns, so its rank is 3."},
		{Question: "What is the Riemann Hypothesis about?", Options: []string{"Distribution of prime numbers", "Convergence of infinite series", "Topology of manifolds", "Graph coloring"}, CorrectIndex: 0, Explanation: "The Riemann Hypothesis conjectures that all non-trivial zeros of the zeta function have real part 1/2, relating to prime distribution."},
		{Question: "What is a Hilbert space?", Options: []string{"A 3D Euclidean space", "A complete inner product space", "A discrete topology", "A finite vector space"}, CorrectIndex: 1, Explanation: "A Hilbert space is a complete (every Cauchy sequence converges) inner product space, generalizing Euclidean space to infinite dimensions."},
		{Question: "What is the Lebesgue integral's advantage over Riemann?", Options: []string{"Faster computation", "Handles more functions and has better limit theorems", "Only works in 1D", "Requires continuity"}, CorrectIndex: 1, Explanation: "The Lebesgue integral can integrate a wider class of functions and supports powerful convergence theorems (DCT, MCT)."},
		{Question: "What is the order of the symmetric group S₅?", Options: []string{"25", "60", "120", "720"}, CorrectIndex: 2, Explanation: "|S₅| = 5! = 120."},
		{Question: "What does Gödel's incompleteness theorem state?", Options: []string{"All true statements are provable", "Any consistent system powerful enough to express arithmetic contains unprovable truths", "Mathematics is inconsistent", "Every equation has a solution"}, CorrectIndex: 1, Explanation: "Gödel showed that in any consistent formal system capable of expressing basic arithmetic, there exist true statements that cannot be proved within the system."},
	},
	{"physics", models.DifficultyBeginner}: {
		{Question: "What is the SI unit of force?", Options: []string{"Joule", "Watt", "Newton", "Pascal"}, CorrectIndex: 2, Explanation: "The Newton (N) is the SI unit of force: 1 N = 1 kg·m/s²."},
		{Question: "What is the speed of light in vacuum (approximately)?", Options: []string{"3 × 10⁶ m/s", "3 × 10⁸ m/s", "3 × 10¹⁰ m/s", "3 × 10⁴ m/s"}, CorrectIndex: 1, Explanation: "The speed of light in vacuum is approximately 3 × 10⁸ m/s (299,792,458 m/s)."},
		{Question: "Which law states 'Every action has an equal and opposite reaction'?", Options: []string{"Newton's First Law", "Newton's Second Law", "Newton's Third Law", "Law of Gravitation"}, CorrectIndex: 2, Explanation: "Newton's Third Law of Motion describes action-reaction force pairs."},
		{Question: "What is the unit of electrical resistance?", Options: []string{"Volt", "Ampere", "Ohm", "Watt"}, CorrectIndex: 2, Explanation: "The Ohm (Ω) is the SI unit of electrical resistance."},
		{Question: "What type of energy does a moving car have?", Options: []string{"Potential energy", "Kinetic energy", "Thermal energy", "Nuclear energy"}, CorrectIndex: 1, Explanation: "A moving object possesses kinetic energy, KE = ½mv²."},
		{Question: "What is the boiling point of water at standard pressure?", Options: []string{"90°C", "100°C", "110°C", "120°C"}, CorrectIndex: 1, Explanation: "Water boils at 100°C (212°F) at standard atmospheric pressure."},
		{Question: "What does DC stand for in electricity?", Options: []string{"Double Current", "Direct Current", "Dense Charge", "Dynamic Circuit"}, CorrectIndex: 1, Explanation: "DC stands for Direct Current, where the electric charge flows in one direction."},
	},
	{"physics", models.DifficultyIntermediate}: {
		{Question: "What is the formula for gravitational potential energy?", Options: []string{"E = mc²", "PE = mgh", "KE = ½mv²", "F = ma"}, CorrectIndex: 1, Explanation: "Gravitational potential energy near Earth's surface is PE = mgh (mass × gravity × height)."},
		{Question: "What is Ohm's Law?", Options: []string{"V = IR", "P = IV", "F = qE", "E = hf"}, CorrectIndex: 0, Explanation: "Ohm's Law states voltage = current × resistance (V = IR)."},
		{Question: "Which particle has no electric charge?", Options: []string{"Proton", "Electron", "Neutron", "Positron"}, CorrectIndex: 2, Explanation: "The neutron is electrically neutral (no charge), found in the atomic nucleus."},
		{Question: "What is the principle behind a hydraulic press?", Options: []string{"Archimedes' principle", "Pascal's law", "Bernoulli's principle", "Boyle's law"}, CorrectIndex: 1, Explanation: "Pascal's law states that pressure applied to a confined fluid is transmitted equally in all directions."},
		{Question: "What is the frequency of a wave with wavelength 2m and speed 340 m/s?", Options: []string{"170 Hz", "680 Hz", "85 Hz", "340 Hz"}, CorrectIndex: 0, Explanation: "f = v/λ = 340/2 = 170 Hz."},
		{Question: "What phenomenon explains why the sky is blue?", Options: []string{"Reflection", "Refraction", "Rayleigh scattering", "Diffraction"}, CorrectIndex: 2, Explanation: "Rayleigh scattering causes shorter blue wavelengths to scatter more than longer red wavelengths."},
		{Question: "What is the first law of thermodynamics?", Options: []string{"Entropy always increases", "Energy cannot be created or destroyed", "Absolute zero is unattainable", "Heat flows from hot to cold"}, CorrectIndex: 1, Explanation: "The first law states that energy is conserved: ΔU = Q - W."},
	},
	{"physics", models.DifficultyAdvanced}: {
		{Question: "What is the Heisenberg Uncertainty Principle?", Options: []string{"Energy is always conserved", "You cannot simultaneously know exact position and momentum of a particle", "Light is both a wave and particle", "Entropy always increases"}, CorrectIndex: 1, Explanation: "The uncertainty principle states Δx·Δp ≥ ℏ/2, limiting simultaneous precision of position and momentum."},
		{Question: "What is the Schwarzschild radius?", Options: []string{"The radius of a neutron star", "The event horizon radius of a non-rotating black hole", "The radius of the observable universe", "The Bohr radius of hydrogen"}, CorrectIndex: 1, Explanation: "The Schwarzschild radius (r_s = 2GM/c²) defines the event horizon of a non-rotating black hole."},
		{Question: "In special relativity, what happens to mass as an object approaches the speed of light?", Options: []string{"It decreases", "It stays the same", "Its relativistic mass increases without bound", "It becomes negative"}, CorrectIndex: 2, Explanation: "As v → c, the Lorentz factor γ → ∞, and the relativistic momentum (and effective inertia) increases without bound."},
		{Question: "What is the significance of the fine-structure constant α ≈ 1/137?", Options: []string{"It defines the speed of light", "It characterizes the strength of electromagnetic interaction", "It determines nuclear stability", "It sets the Planck scale"}, CorrectIndex: 1, Explanation: "The fine-structure constant α ≈ 1/137 is a dimensionless constant characterizing the strength of the electromagnetic force."},
		{Question: "What is quantum entanglement?", Options: []string{"Particles orbiting each other", "Correlated quantum states where measuring one instantly affects the other", "Particles merging together", "A type of nuclear reaction"}, CorrectIndex: 1, Explanation: "Entangled particles have correlated quantum states: measuring one determines the state of the other, regardless of distance."},
		{Question: "What does the Dirac equation describe?", Options: []string{"Classical fluid dynamics", "Relativistic quantum mechanics of spin-½ particles", "Gravitational waves", "Thermodynamic equilibrium"}, CorrectIndex: 1, Explanation: "The Dirac equation is a relativistic wave equation describing fermions (spin-½ particles) like electrons, predicting antimatter."},
		{Question: "What is the cosmological constant problem?", Options: []string{"Dark matter hasn't been found", "The observed vacuum energy is ~120 orders of magnitude smaller than predicted", "The universe's age is unknown", "Gravity hasn't been quantized"}, CorrectIndex: 1, Explanation: "Quantum field theory predicts a vacuum energy density vastly larger than observed, one of the biggest unsolved problems."},
	},
	{"general knowledge", models.DifficultyBeginner}: {
		{Question: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, CorrectIndex: 1, Explanation: "Mars appears red due to iron oxide (rust) on its surface."},
		{Question: "What is the largest ocean on Earth?", Options: []string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean", "Pacific Ocean"}, CorrectIndex: 3, Explanation: "The Pacific Ocean is the largest, covering about 63 million square miles."},
		{Question: "Who wrote 'Romeo and Juliet'?", Options: []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"}, CorrectIndex: 1, Explanation: "William Shakespeare wrote Romeo and Juliet, believed to be written between 1591 and 1596."},
		{Question: "What is the chemical symbol for gold?", Options: []string{"Go", "Gd", "Au", "Ag"}, CorrectIndex: 2, Explanation: "Au comes from the Latin word 'aurum' meaning gold."},
		{Question: "Which gas do plants absorb from the atmosphere?", Options: []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"}, CorrectIndex: 2, Explanation: "Plants absorb CO₂ during photosynthesis and release oxygen."},
		{Question: "How many continents are there on Earth?", Options: []string{"5", "6", "7", "8"}, CorrectIndex: 2, Explanation: "There are 7 continents: Africa, Antarctica, Asia, Australia, Europe, North America, South America."},
		{Question: "What is the tallest mountain in the world?", Options: []string{"K2", "Kangchenjunga", "Mount Everest", "Lhotse"}, CorrectIndex: 2, Explanation: "Mount Everest stands at 8,849 meters (29,032 feet) above sea level."},
	},
	{"general knowledge", models.DifficultyIntermediate}: {
		{Question: "What is the Fibonacci sequence's next number after 1, 1, 2, 3, 5, 8?", Options: []string{"11", "12", "13", "15"}, CorrectIndex: 2, Explanation: "Each number is the sum of the two preceding ones: 5 + 8 = 13."},
		{Question: "Which element has the atomic number 79?", Options: []string{"Silver", "Gold", "Platinum", "Copper"}, CorrectIndex: 1, Explanation: "Gold (Au) has atomic number 79."},
		{Question: "What is the longest river in the world?", Options: []string{"Amazon", "Nile", "Yangtze", "Mississippi"}, CorrectIndex: 1, Explanation: "The Nile River is approximately 6,650 km (4,130 mi) long, the longest in the world."},
		{Question: "Who developed the theory of general relativity?", Options: []string{"Isaac Newton", "Niels Bohr", "Albert Einstein", "Max Planck"}, CorrectIndex: 2, Explanation: "Albert Einstein published the theory of general relativity in 1915."},
		{Question: "What is the smallest country in the world by area?", Options: []string{"Monaco", "Vatican City", "San Marino", "Liechtenstein"}, CorrectIndex: 1, Explanation: "Vatican City is the smallest country, at about 44 hectares (110 acres)."},
		{Question: "What is the main component of the Sun?", Options: []string{"Helium", "Hydrogen", "Oxygen", "Carbon"}, CorrectIndex: 1, Explanation: "The Sun is about 73% hydrogen and 25% helium by mass."},
		{Question: "In what year did World War II end?", Options: []string{"1943", "1944", "1945", "1946"}, CorrectIndex: 2, Explanation: "World War II ended in 1945 with the surrender of Germany in May and Japan in September."},
	},
	{"general knowledge", models.DifficultyAdvanced}: {
		{Question: "What is the Chandrasekhar limit?", Options: []string{"Maximum mass of a white dwarf (~1.4 solar masses)", "Maximum speed in the universe", "Age of the universe", "Size of the observable universe"}, CorrectIndex: 0, Explanation: "The Chandrasekhar limit (~1.4 M☉) is the maximum mass of a stable white dwarf star."},
		{Question: "Which treaty established the European Economic Community?", Options: []string{"Treaty of Versailles", "Treaty of Rome", "Maastricht Treaty", "Treaty of Lisbon"}, CorrectIndex: 1, Explanation: "The Treaty of Rome (1957) established the EEC, a precursor to the EU."},
		{Question: "What is CRISPR-Cas9 used for?", Options: []string{"Quantum computing", "Gene editing", "Nuclear fusion", "Cryptocurrency mining"}, CorrectIndex: 1, Explanation: "CRISPR-Cas9 is a revolutionary gene-editing technology that can precisely modify DNA sequences."},
		{Question: "Who is considered the father of modern economics?", Options: []string{"Karl Marx", "Adam Smith", "John Maynard Keynes", "Milton Friedman"}, CorrectIndex: 1, Explanation: "Adam Smith, author of 'The Wealth of Nations' (1776), is widely considered the father of modern economics."},
		{Question: "What is the Drake Equation used to estimate?", Options: []string{"Age of the universe", "Number of communicative civilizations in the Milky Way", "Speed of galaxy expansion", "Entropy of the universe"}, CorrectIndex: 1, Explanation: "The Drake Equation estimates the number of active, communicative extraterrestrial civilizations in the Milky Way."},
		{Question: "What is the Sapir-Whorf hypothesis?", Options: []string{"A theory about evolution", "Language influences thought and perception", "A principle of thermodynamics", "A model of the atom"}, CorrectIndex: 1, Explanation: "The Sapir-Whorf hypothesis proposes that the structure of a language affects its speakers' cognition and worldview."},
		{Question: "What is the significance of the Rosetta Stone?", Options: []string{"It predicted eclipses", "It enabled decipherment of Egyptian hieroglyphs", "It described ancient Greek democracy", "It mapped trade routes"}, CorrectIndex: 1, Explanation: "The Rosetta Stone (196 BC) had text in three scripts, enabling Jean-François Champollion to decipher hieroglyphs in 1822."},
	},
}

// defaultSubject backs requests for subjects the bank has no entry for.
const defaultSubject = "general knowledge"

// ErrNoFallbackContent means the bank has nothing for the requested
// difficulty at all. No graceful degradation remains past this point, so
// callers surface it as a service-level failure.
var ErrNoFallbackContent = fmt.Errorf("no fallback questions available")

// SampleFallback returns up to count questions for (subject, difficulty),
// uniformly sampled without replacement. Subject resolution, loosest last:
// exact match, case-insensitive substring match, the default subject's pool,
// then every pool for the difficulty. A pool smaller than count clamps the
// result rather than failing.
func SampleFallback(subject string, difficulty models.Difficulty, count int) ([]models.QuizQuestion, error) {
	needle := strings.ToLower(subject)
	pool := fallbackBank[bankKey{needle, difficulty}]

	if len(pool) == 0 {
		for key, qs := range fallbackBank {
			if key.difficulty == difficulty && strings.Contains(key.subject, needle) {
				pool = qs
				break
			}
		}
	}

	if len(pool) == 0 {
		pool = fallbackBank[bankKey{defaultSubject, difficulty}]
	}

	if len(pool) == 0 {
		for key, qs := range fallbackBank {
			if key.difficulty == difficulty {
				pool = append(pool, qs...)
			}
		}
	}

	if len(pool) < count {
		log.Printf("WARN: only %d fallback questions available for %s/%s, requested %d", len(pool), subject, difficulty, count)
		count = len(pool)
	}

	if count == 0 {
		return nil, fmt.Errorf("%w for %s/%s", ErrNoFallbackContent, subject, difficulty)
	}

	sampled := make([]models.QuizQuestion, 0, count)
	for _, idx := range rand.Perm(len(pool))[:count] {
		sampled = append(sampled, pool[idx])
	}
	return sampled, nil
}
