package summary

import "fmt"

const systemInstruction = "You are a helpful assistant."

const promptTemplate = `Your goal is to assist with summarizing YouTube videos.
I will provide you with a YouTube video transcription and you will give me a concise summary. Here are your requirements on how you need to summarize:
1. Identify Key Points: Scan the entire transcription to pinpoint the main ideas or arguments presented in the video.
2. Organize Information: Arrange these key points logically. For instructional or educational videos, organize them in a step-by-step or chronological order. For other video types, group similar ideas together for coherence.
3. Summarize Each Point: Distill the essence of what is said about each point in the video, omitting redundant or non-essential information.
4. Bullet-Point Format: Present the summary in a bullet-point format for easy reading and quick scanning of the main ideas.
5. Revise for Clarity and Brevity: Review the summary to ensure it is clear, concise, and accurately represents the content of the video.
Here is the transcript for you to summarize:
"%s"`

// buildPrompt embeds the transcript verbatim in the instruction
// template. No chunking or length limiting; oversized transcripts are
// expected to fail upstream.
func buildPrompt(transcript string) string {
	return fmt.Sprintf(promptTemplate, transcript)
}
