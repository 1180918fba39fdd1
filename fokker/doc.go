// Package fokker builds maximally-even periodicity blocks (Fokker blocks):
// for a rank-r mapping and a target note count N, the N best-approximated
// scale degrees in every generator dimension simultaneously.
package fokker
