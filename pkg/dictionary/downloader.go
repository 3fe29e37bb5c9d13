package dictionary

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// repoOwner/repoName identify the jmdict-simplified GitHub project that
// publishes both the JMdict word dictionary and the JMnedict name
// dictionary as dated release assets.
const (
	repoOwner = "scriptin"
	repoName  = "jmdict-simplified"
)

// DictionaryAsset names the release-asset family to fetch: the word
// dictionary (jmdict-eng-common) or the proper-name dictionary (jmnedict).
type DictionaryAsset int

const (
	// WordDictionaryAsset is the English-glossed common-word JMdict export.
	WordDictionaryAsset DictionaryAsset = iota
	// NameDictionaryAsset is the JMnedict proper-noun/reading export.
	NameDictionaryAsset
)

// namePattern is the release-asset filename substring that identifies this
// asset family.
func (a DictionaryAsset) namePattern() string {
	switch a {
	case NameDictionaryAsset:
		return "jmnedict"
	default:
		return "jmdict-eng-common"
	}
}

func (a DictionaryAsset) String() string {
	switch a {
	case NameDictionaryAsset:
		return "jmnedict"
	default:
		return "jmdict-eng-common"
	}
}

// EnsureDictionary downloads the JMdict-Simplified common-word dictionary to
// path if it is not already present, discovering the download URL from the
// project's latest GitHub release.
func EnsureDictionary(ctx context.Context, path string) error {
	return EnsureDictionaryAsset(ctx, path, WordDictionaryAsset)
}

// EnsureNameDictionary downloads the JMnedict proper-name dictionary to path
// if it is not already present, the JMnedict counterpart EnsureDictionary
// never had in the teacher's reading-tracker CLI (which only ever consumed
// the word dictionary).
func EnsureNameDictionary(ctx context.Context, path string) error {
	return EnsureDictionaryAsset(ctx, path, NameDictionaryAsset)
}

// EnsureDictionaryAsset checks whether path already holds a dictionary file;
// if not, it resolves asset's latest published release asset from GitHub,
// downloads it, and extracts the JSON payload to path.
func EnsureDictionaryAsset(ctx context.Context, path string, asset DictionaryAsset) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	fmt.Printf("%s dictionary not found at %s. Attempting auto-download...\n", asset, path)

	downloadURL, err := latestReleaseAssetURL(ctx, asset)
	if err != nil {
		return fmt.Errorf("failed to find latest %s release: %w", asset, err)
	}

	fmt.Printf("Downloading %s from %s...\n", asset, downloadURL)
	return downloadAndExtract(ctx, downloadURL, path)
}

// latestReleaseAssetURL queries the jmdict-simplified GitHub release feed
// and returns the browser-download URL of the first asset whose filename
// matches asset's family pattern and carries a .json.tgz/.json.gz suffix.
func latestReleaseAssetURL(ctx context.Context, asset DictionaryAsset) (string, error) {
	apiURL := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", repoOwner, repoName)
	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "japanalyze-cli")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github api returned status: %s", resp.Status)
	}

	var release struct {
		Assets []struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	pattern := asset.namePattern()
	for _, a := range release.Assets {
		if strings.Contains(a.Name, pattern) && (strings.HasSuffix(a.Name, ".json.tgz") || strings.HasSuffix(a.Name, ".json.gz")) {
			return a.BrowserDownloadURL, nil
		}
	}
	return "", fmt.Errorf("no %s asset found in latest release", pattern)
}

// downloadAndExtract fetches the .tgz release asset at url and writes its
// first .json archive member to destPath.
func downloadAndExtract(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 30 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %s", resp.Status)
	}

	gzReader, err := gzip.NewReader(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return fmt.Errorf("no json file found in downloaded archive")
		}
		if err != nil {
			return fmt.Errorf("error reading tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg || !strings.HasSuffix(header.Name, ".json") {
			continue
		}

		outFile, err := os.Create(destPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if _, err := io.Copy(outFile, tarReader); err != nil {
			outFile.Close()
			return fmt.Errorf("failed to write to file: %w", err)
		}
		return outFile.Close()
	}
}
