// Package speech builds text-to-speech URLs and hands them to an external
// audio player.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/oukeidos/gt/internal/tk"
)

const (
	DefaultEndpoint = "https://translate.google.com/translate_tts"
	DefaultPlayer   = "mplayer"
)

var execCommand = exec.CommandContext

// URL returns the speech URL for text in lang, signed for the hour of now.
func URL(endpoint, lang, text string, now time.Time) string {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "ie=UTF-8&client=t" +
		"&tl=" + url.QueryEscape(lang) +
		"&q=" + url.QueryEscape(text) +
		"&tk=" + url.QueryEscape(tk.Sign(text, tk.HourSeed(now)))
}

// ResolvePlayer picks the first non-empty of explicit, $GT_PLAYER, $PLAYER,
// configured, and DefaultPlayer.
func ResolvePlayer(explicit, configured string) string {
	for _, candidate := range []string{explicit, os.Getenv("GT_PLAYER"), os.Getenv("PLAYER"), configured} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return DefaultPlayer
}

// PlayerArgs splits player on whitespace and appends speechURL.
func PlayerArgs(player, speechURL string) ([]string, error) {
	args := strings.Fields(player)
	if len(args) == 0 {
		return nil, errors.New("empty player command")
	}
	return append(args, speechURL), nil
}

// Play runs player with speechURL as its last argument and waits for it.
func Play(ctx context.Context, player, speechURL string) error {
	args, err := PlayerArgs(player, speechURL)
	if err != nil {
		return err
	}
	cmd := execCommand(ctx, args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	slog.Debug("Starting player", "player", args[0])
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("player %s failed: %w", args[0], err)
	}
	return nil
}
