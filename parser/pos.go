// Copyright 2024 The Hayadict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

// partsOfSpeech maps the abbreviated part-of-speech tags used in the source
// document to their expanded names.
var partsOfSpeech = map[string]string{
	"n.":     "noun",
	"v.":     "verb",
	"aff.":   "affix",
	"irr.v.": "irregular_verb",
	"num.":   "number",
	"stv.":   "stative_verb",
	"adv.":   "adverb",
	"pron.":  "pronoun",
	"part.":  "particle",
	"conj.":  "conjunction",
	"hon.":   "honorific",
	"intj.":  "interjection",
	"inte.":  "interrogative",
	"prep.":  "preposition",
	"pos.":   "postposition",
	"phr.":   "phrase",
	"aux.":   "auxiliary",
}

// wordClasses is the set of word class tags. The class is stored on entries
// without the trailing dot.
var wordClasses = map[string]bool{
	"i.":   true,
	"ii.":  true,
	"iii.": true,
}
