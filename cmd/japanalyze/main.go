package main

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/japanalyze/japanalyze/pkg/config"
	"github.com/japanalyze/japanalyze/pkg/conj"
	"github.com/japanalyze/japanalyze/pkg/dictionary"
	"github.com/japanalyze/japanalyze/pkg/history"
	"github.com/japanalyze/japanalyze/pkg/pipeline"
	"github.com/japanalyze/japanalyze/pkg/segmenter"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	configFlag := flag.String("config", "", "Path to a YAML config file (db_path/dict_path/names_path/replay_workers/replay_batch_size); JAPANALYZE_* env vars override it, and explicit flags below override both")
	dbFlag := flag.String("db", "", "Path to SQLite history database (overrides config)")
	dictFlag := flag.String("import-dict", "", "Path to JMdict-Simplified JSON file to load word definitions from (overrides config)")
	namesFlag := flag.String("import-names", "", "Path to JMnedict JSON file to load proper-noun readings from (overrides config)")
	textFlag := flag.String("text", "", "Japanese text to analyze (reads stdin if omitted)")
	modeFlag := flag.String("split", "mid", "Segmentation granularity: short, mid, or long")
	viewFlag := flag.String("view", "vocabulary", "Response view: vocabulary or full")
	recordFlag := flag.Bool("record", false, "Persist the analyzed sentence and its vocabulary to the history database")
	deconjFlag := flag.String("deconjugate", "", "Deep-deconjugate one word: surface,base[,type2]")
	conjugateFlag := flag.String("conjugate", "", "Forward-conjugate a verb: verb,aux1:aux2:...,final[,type2]")
	replayFlag := flag.String("replay", "", "Path to a file of newline-separated sentences to bulk re-analyze and record into history, using the config's replay worker/batch settings")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}
	if *dictFlag != "" {
		cfg.DictPath = *dictFlag
	}
	if *namesFlag != "" {
		cfg.NamesPath = *namesFlag
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := history.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	seg, err := segmenter.New()
	if err != nil {
		log.Fatalf("Failed to build segmenter: %v", err)
	}

	idx := loadIndex(ctx, cfg.DictPath, cfg.NamesPath)
	p := pipeline.New(seg, idx)

	if *deconjFlag != "" {
		runDeconjugate(p, *deconjFlag)
		return
	}
	if *conjugateFlag != "" {
		runConjugate(p, *conjugateFlag)
		return
	}
	if *replayFlag != "" {
		runReplay(ctx, conn, p, cfg, *replayFlag)
		return
	}

	mode, err := parseSplitMode(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	text := *textFlag
	if text == "" {
		text, err = readStdin()
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Fatal("No text to analyze: pass -text or pipe text on stdin")
	}

	var tokens []pipeline.Token
	switch *viewFlag {
	case "vocabulary":
		tokens = p.AnalyzeVocabulary(text, mode)
	case "full":
		tokens = p.AnalyzeFull(text, mode)
	default:
		log.Fatalf("Unknown -view %q: want vocabulary or full", *viewFlag)
	}

	if *recordFlag {
		store := history.NewStore(conn)
		sentenceID, err := store.RecordSentence(ctx, text, tokens)
		if err != nil {
			log.Printf("Warning: failed to record history: %v", err)
		} else {
			fmt.Printf("Recorded sentence id %d\n", sentenceID)
		}
	}

	printTokens(tokens)
}

// loadIndex builds the dictionary index from explicit -import-dict/-import-names
// flags when given, otherwise auto-downloads the cached JMdict-Simplified
// snapshot the way the teacher's ingestion flow did, falling back to an empty
// index so analysis still runs (with blank meanings) when neither is available.
func loadIndex(ctx context.Context, dictPath, namesPath string) *dictionary.Index {
	const cachedDictPath = "jmdict-eng-common.json"

	if dictPath == "" {
		if err := dictionary.EnsureDictionary(ctx, cachedDictPath); err != nil {
			log.Printf("Warning: failed to fetch cached dictionary: %v. Continuing without definitions.", err)
		} else {
			dictPath = cachedDictPath
		}
	}

	var entries []dictionary.Entry
	if dictPath != "" {
		if _, err := os.Stat(dictPath); err == nil {
			start := time.Now()
			loaded, err := dictionary.LoadJMdictSimplified(dictPath)
			if err != nil {
				log.Printf("Warning: failed to load dictionary %s: %v", dictPath, err)
			} else {
				entries = loaded
				log.Printf("Loaded %d dictionary entries in %v", len(entries), time.Since(start))
			}
		}
	}

	const cachedNamesPath = "jmnedict.json"
	if namesPath == "" {
		if err := dictionary.EnsureNameDictionary(ctx, cachedNamesPath); err != nil {
			log.Printf("Warning: failed to fetch cached name dictionary: %v. Continuing without name lookups.", err)
		} else {
			namesPath = cachedNamesPath
		}
	}

	var names []dictionary.NameEntry
	if namesPath != "" {
		loaded, err := dictionary.LoadJMnedict(namesPath)
		if err != nil {
			log.Printf("Warning: failed to load name dictionary %s: %v", namesPath, err)
		} else {
			names = loaded
		}
	}

	return dictionary.NewIndex(entries, names, "jmdict")
}

// runReplay bulk re-analyzes every non-blank line of the file at path and
// records the results into history, sizing its worker pool and batch commits
// from the resolved config rather than the teacher's hardcoded defaults.
func runReplay(ctx context.Context, conn *sql.DB, p *pipeline.Pipeline, cfg config.Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read -replay file %s: %v", path, err)
	}

	var texts []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			texts = append(texts, line)
		}
	}
	if len(texts) == 0 {
		log.Fatalf("No sentences found in -replay file %s", path)
	}

	r := history.NewReplayer(conn, p)
	if cfg.ReplayWorkers > 0 {
		r.Workers = cfg.ReplayWorkers
	}
	if cfg.ReplayBatchSize > 0 {
		r.BatchSize = cfg.ReplayBatchSize
	}
	r.Logger = log.Default()

	recorded, err := r.Replay(ctx, texts)
	if err != nil {
		log.Fatalf("Replay failed after recording %d/%d sentences: %v", recorded, len(texts), err)
	}
	fmt.Printf("Replayed %d sentences\n", recorded)
}

func parseSplitMode(s string) (segmenter.SplitMode, error) {
	switch strings.ToLower(s) {
	case "short":
		return segmenter.Short, nil
	case "mid", "":
		return segmenter.Mid, nil
	case "long":
		return segmenter.Long, nil
	default:
		return 0, fmt.Errorf("unknown -split %q: want short, mid, or long", s)
	}
}

func readStdin() (string, error) {
	var sb strings.Builder
	r := bufio.NewReader(os.Stdin)
	if _, err := io.Copy(&sb, r); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func printTokens(tokens []pipeline.Token) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tokens); err != nil {
		log.Fatalf("Failed to encode response: %v", err)
	}
}

// runDeconjugate handles -deconjugate=surface,base[,type2], printing the deep
// single-word deconjugation result (conjugation chain plus English hint) the
// way the analytic pipeline's deep view does for one predicate in context.
func runDeconjugate(p *pipeline.Pipeline, spec string) {
	parts := strings.Split(spec, ",")
	if len(parts) < 2 {
		log.Fatalf("Invalid -deconjugate %q: want surface,base[,type2]", spec)
	}
	surface := strings.TrimSpace(parts[0])
	base := strings.TrimSpace(parts[1])
	type2 := false
	if len(parts) >= 3 {
		type2 = strings.EqualFold(strings.TrimSpace(parts[2]), "true")
	}

	result := p.DeconjugateVerbWord(surface, base, "", type2)
	if !result.Found {
		adjResult := p.DeconjugateAdjectiveWord(surface, base, "")
		if adjResult.Found {
			result = adjResult
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("Failed to encode deconjugation result: %v", err)
	}
}

// runConjugate handles -conjugate=verb,aux1:aux2:...,final[,type2], forward
// generating every surface form produced by the conjugation engine for the
// requested auxiliary chain and terminal conjugation.
func runConjugate(p *pipeline.Pipeline, spec string) {
	parts := strings.Split(spec, ",")
	if len(parts) < 2 {
		log.Fatalf("Invalid -conjugate %q: want verb,aux1:aux2:...,final[,type2]", spec)
	}
	verb := strings.TrimSpace(parts[0])

	var auxiliaries []conj.Auxiliary
	if auxField := strings.TrimSpace(parts[1]); auxField != "" {
		for _, name := range strings.Split(auxField, ":") {
			aux, err := parseAuxiliary(strings.TrimSpace(name))
			if err != nil {
				log.Fatal(err)
			}
			auxiliaries = append(auxiliaries, aux)
		}
	}

	final := conj.Dictionary
	if len(parts) >= 3 && strings.TrimSpace(parts[2]) != "" {
		c, err := parseConjugation(strings.TrimSpace(parts[2]))
		if err != nil {
			log.Fatal(err)
		}
		final = c
	}

	type2 := len(parts) >= 4 && strings.EqualFold(strings.TrimSpace(parts[3]), "true")

	forms, err := p.ConjugateVerbForward(verb, auxiliaries, final, type2)
	if err != nil {
		log.Fatalf("Conjugation failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(forms); err != nil {
		log.Fatalf("Failed to encode conjugation result: %v", err)
	}
}

func parseConjugation(name string) (conj.Conjugation, error) {
	switch strings.ToLower(name) {
	case "negative":
		return conj.Negative, nil
	case "conjunctive":
		return conj.Conjunctive, nil
	case "dictionary":
		return conj.Dictionary, nil
	case "conditional":
		return conj.Conditional, nil
	case "imperative":
		return conj.Imperative, nil
	case "volitional":
		return conj.Volitional, nil
	case "te":
		return conj.Te, nil
	case "ta":
		return conj.Ta, nil
	case "tara":
		return conj.Tara, nil
	case "tari":
		return conj.Tari, nil
	case "zu":
		return conj.Zu, nil
	case "nu":
		return conj.Nu, nil
	default:
		return 0, fmt.Errorf("unknown conjugation %q", name)
	}
}

func parseAuxiliary(name string) (conj.Auxiliary, error) {
	switch strings.ToLower(name) {
	case "potential":
		return conj.Potential, nil
	case "masu":
		return conj.Masu, nil
	case "nai":
		return conj.Nai, nil
	case "tai":
		return conj.Tai, nil
	case "tagaru":
		return conj.Tagaru, nil
	case "hoshii":
		return conj.Hoshii, nil
	case "rashii":
		return conj.Rashii, nil
	case "souda_hearsay":
		return conj.SoudaHearsay, nil
	case "souda_conjecture":
		return conj.SoudaConjecture, nil
	case "seru_saseru":
		return conj.SeruSaseru, nil
	case "shortened_causative":
		return conj.ShortenedCausative, nil
	case "reru_rareru":
		return conj.ReruRareru, nil
	case "causative_passive":
		return conj.CausativePassive, nil
	case "shortened_causative_passive":
		return conj.ShortenedCausativePassive, nil
	case "ageru":
		return conj.Ageru, nil
	case "sashiageru":
		return conj.Sashiageru, nil
	case "yaru":
		return conj.Yaru, nil
	case "morau":
		return conj.Morau, nil
	case "itadaku":
		return conj.Itadaku, nil
	case "kureru":
		return conj.Kureru, nil
	case "kudasaru":
		return conj.Kudasaru, nil
	case "te_iru":
		return conj.TeIru, nil
	case "te_aru":
		return conj.TeAru, nil
	case "miru":
		return conj.Miru, nil
	case "iku":
		return conj.Iku, nil
	case "kuru":
		return conj.Kuru, nil
	case "oku":
		return conj.Oku, nil
	case "shimau":
		return conj.Shimau, nil
	case "te_oru":
		return conj.TeOru, nil
	case "sugiru":
		return conj.Sugiru, nil
	case "yasui":
		return conj.Yasui, nil
	case "nikui":
		return conj.Nikui, nil
	case "hajimeru":
		return conj.Hajimeru, nil
	case "owaru":
		return conj.Owaru, nil
	case "tsuzukeru":
		return conj.Tsuzukeru, nil
	case "dasu":
		return conj.Dasu, nil
	case "garu":
		return conj.Garu, nil
	case "sou_appearance":
		return conj.SouAppearance, nil
	default:
		return 0, fmt.Errorf("unknown auxiliary %q", name)
	}
}
